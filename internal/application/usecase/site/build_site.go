package site

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/3zk9/portfolio/internal/application/service"
	domainsite "github.com/3zk9/portfolio/internal/domain/site"
	"github.com/3zk9/portfolio/internal/view"
	"github.com/3zk9/portfolio/pkg/apperror"
	"github.com/3zk9/portfolio/pkg/logger"
)

const ManifestFile = "build.json"

type BuildSiteUseCase struct {
	fs     afero.Fs
	assets fs.FS
	render *RenderPageUseCase
	clock  service.Clock
	logger logger.Logger
}

// NewBuildSiteUseCase writes into fsys. assets must contain the static/ tree of view.StaticFS.
func NewBuildSiteUseCase(fsys afero.Fs, assets fs.FS, render *RenderPageUseCase, clock service.Clock, log logger.Logger) *BuildSiteUseCase {
	return &BuildSiteUseCase{
		fs:     fsys,
		assets: assets,
		render: render,
		clock:  clock,
		logger: log,
	}
}

type BuildInput struct {
	OutDir         string
	Base           string
	EmptyOutDir    bool
	PublicDir      string
	Theme          string
	MarqueeSeconds int
	WasmPath       string
	WasmExecPath   string
}

type BuildOutput struct {
	BuildID uuid.UUID
	OutDir  string
	Base    string
	// Files are slash-separated paths relative to OutDir, sorted.
	Files []string
}

type Manifest struct {
	BuildID     string    `json:"build_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Base        string    `json:"base"`
	Runtime     bool      `json:"runtime"`
	Files       []string  `json:"files"`
}

func (uc *BuildSiteUseCase) Execute(ctx context.Context, input BuildInput) (*BuildOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	outDir, err := uc.checkOutDir(input)
	if err != nil {
		return nil, err
	}
	base := domainsite.NormalizeBase(input.Base)
	log := uc.logger.With(zap.String("out_dir", outDir), zap.String("base", base))

	if input.EmptyOutDir {
		if err := uc.fs.RemoveAll(outDir); err != nil {
			return nil, apperror.NewInternal("failed to empty output directory", err)
		}
		log.Debug("Output directory emptied")
	}
	if err := uc.fs.MkdirAll(outDir, 0o755); err != nil {
		return nil, apperror.NewInternal("failed to create output directory", err)
	}

	w := &writer{fs: uc.fs, root: outDir, files: map[string]struct{}{}}

	if input.PublicDir != "" {
		if err := uc.copyPublic(w, input.PublicDir); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := uc.copyStatic(w); err != nil {
		return nil, err
	}

	runtime, err := uc.copyRuntime(w, input, log)
	if err != nil {
		return nil, err
	}

	page, err := uc.render.Execute(ctx, RenderInput{
		Base:           base,
		Theme:          input.Theme,
		MarqueeSeconds: input.MarqueeSeconds,
		Runtime:        runtime,
	})
	if err != nil {
		return nil, fmt.Errorf("render index failed: %w", err)
	}
	if err := w.write("index.html", page.HTML); err != nil {
		return nil, err
	}

	buildID := uuid.New()
	files := w.list()
	manifest, err := json.MarshalIndent(Manifest{
		BuildID:     buildID.String(),
		GeneratedAt: uc.clock.Now().UTC(),
		Base:        base,
		Runtime:     runtime,
		Files:       files,
	}, "", "  ")
	if err != nil {
		return nil, apperror.NewInternal("failed to encode build manifest", err)
	}
	if err := w.write(ManifestFile, manifest); err != nil {
		return nil, err
	}

	log.Info("Site built", zap.String("build_id", buildID.String()), zap.Int("files", len(w.files)), zap.Bool("runtime", runtime))
	return &BuildOutput{BuildID: buildID, OutDir: outDir, Base: base, Files: w.list()}, nil
}

func (uc *BuildSiteUseCase) checkOutDir(input BuildInput) (string, error) {
	if strings.TrimSpace(input.OutDir) == "" {
		return "", apperror.NewInvalidInput("output directory must be provided", nil)
	}
	outDir := filepath.Clean(input.OutDir)
	if outDir == "." || outDir == string(filepath.Separator) || filepath.Dir(outDir) == outDir {
		return "", apperror.NewInvalidInput(fmt.Sprintf("refusing to build into %q", input.OutDir), nil)
	}
	if input.PublicDir != "" {
		public := filepath.Clean(input.PublicDir)
		if within(outDir, public) || within(public, outDir) {
			return "", apperror.NewInvalidInput(fmt.Sprintf("output directory %q overlaps public directory %q", input.OutDir, input.PublicDir), nil)
		}
	}
	return outDir, nil
}

// within reports whether p is dir itself or lies below it.
func within(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (uc *BuildSiteUseCase) copyPublic(w *writer, dir string) error {
	ok, err := afero.DirExists(uc.fs, dir)
	if err != nil {
		return apperror.NewInternal("failed to stat public directory", err)
	}
	if !ok {
		uc.logger.Debug("No public directory", zap.String("public_dir", dir))
		return nil
	}
	return afero.Walk(uc.fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return apperror.NewInternal("failed to walk public directory", err)
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return apperror.NewInternal("failed to resolve public file", err)
		}
		data, err := afero.ReadFile(uc.fs, p)
		if err != nil {
			return apperror.NewInternal("failed to read public file", err)
		}
		return w.write(filepath.ToSlash(rel), data)
	})
}

func (uc *BuildSiteUseCase) copyStatic(w *writer) error {
	return fs.WalkDir(uc.assets, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return apperror.NewInternal("failed to walk embedded assets", err)
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(uc.assets, p)
		if err != nil {
			return apperror.NewInternal("failed to read embedded asset", err)
		}
		return w.write(path.Join("assets", strings.TrimPrefix(p, "static/")), data)
	})
}

// copyRuntime reports whether both wasm artifacts were found and copied.
func (uc *BuildSiteUseCase) copyRuntime(w *writer, input BuildInput, log logger.Logger) (bool, error) {
	if input.WasmPath == "" || input.WasmExecPath == "" {
		log.Warn("Browser runtime not configured, page falls back to CSS smooth scrolling")
		return false, nil
	}
	for _, src := range []string{input.WasmPath, input.WasmExecPath} {
		ok, err := afero.Exists(uc.fs, src)
		if err != nil {
			return false, apperror.NewInternal("failed to stat runtime artifact", err)
		}
		if !ok {
			log.Warn("Browser runtime artifact missing, page falls back to CSS smooth scrolling", zap.String("path", src))
			return false, nil
		}
	}

	copies := map[string]string{
		view.WasmPath:     input.WasmPath,
		view.WasmExecPath: input.WasmExecPath,
	}
	for dst, src := range copies {
		data, err := afero.ReadFile(uc.fs, src)
		if err != nil {
			return false, apperror.NewInternal("failed to read runtime artifact", err)
		}
		if err := w.write(dst, data); err != nil {
			return false, err
		}
	}
	return true, nil
}

type writer struct {
	fs    afero.Fs
	root  string
	files map[string]struct{}
}

func (w *writer) write(rel string, data []byte) error {
	dst := filepath.Join(w.root, filepath.FromSlash(rel))
	if err := w.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return apperror.NewInternal(fmt.Sprintf("failed to create directory for %s", rel), err)
	}
	if err := afero.WriteFile(w.fs, dst, data, 0o644); err != nil {
		return apperror.NewInternal(fmt.Sprintf("failed to write %s", rel), err)
	}
	w.files[rel] = struct{}{}
	return nil
}

func (w *writer) list() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}
