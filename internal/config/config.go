package config

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env  string `mapstructure:"env"`
		Port string `mapstructure:"port"`
	} `mapstructure:"app"`
	Site struct {
		Base           string `mapstructure:"base"`
		OutDir         string `mapstructure:"out_dir"`
		EmptyOutDir    bool   `mapstructure:"empty_out_dir"`
		PublicDir      string `mapstructure:"public_dir"`
		Theme          string `mapstructure:"theme"`
		MarqueeSeconds int    `mapstructure:"marquee_seconds"`
	} `mapstructure:"site"`
	Assets struct {
		Wasm     string `mapstructure:"wasm"`
		WasmExec string `mapstructure:"wasm_exec"`
	} `mapstructure:"assets"`
}

// LoadConfig reads .env and config.yaml from path, then applies environment overrides.
func LoadConfig(path string) (cfg Config, err error) {
	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "4173")
	v.SetDefault("site.base", "/3zk9.io/")
	v.SetDefault("site.out_dir", "docs")
	v.SetDefault("site.empty_out_dir", true)
	v.SetDefault("site.public_dir", "public")
	v.SetDefault("site.theme", "dark")
	v.SetDefault("site.marquee_seconds", 18)
	v.SetDefault("assets.wasm", "build/app.wasm")
	v.SetDefault("assets.wasm_exec", "")

	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("site.base", "SITE_BASE")
	v.BindEnv("site.out_dir", "SITE_OUT_DIR")
	v.BindEnv("site.empty_out_dir", "SITE_EMPTY_OUT_DIR")
	v.BindEnv("site.public_dir", "SITE_PUBLIC_DIR")
	v.BindEnv("site.theme", "SITE_THEME")
	v.BindEnv("site.marquee_seconds", "SITE_MARQUEE_SECONDS")
	v.BindEnv("assets.wasm", "ASSETS_WASM")
	v.BindEnv("assets.wasm_exec", "ASSETS_WASM_EXEC")

	err = v.Unmarshal(&cfg)
	return
}
