package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env to default to dev, got %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
	if cfg.Store.Driver != StoreDriverSQLite {
		t.Fatalf("unexpected default store driver %q", cfg.Store.Driver)
	}
	if cfg.Store.Path != "fooddash.db" {
		t.Fatalf("unexpected default store path %q", cfg.Store.Path)
	}
	if cfg.Seed.Disable {
		t.Fatal("seeding should be enabled by default")
	}
}

func TestLoad_UnknownStoreDriver(t *testing.T) {
	t.Setenv("FOODDASH_STORE_DRIVER", "etcd")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown store driver to return an error")
	}
}

func TestLoad_SQLiteRequiresPath(t *testing.T) {
	t.Setenv("FOODDASH_STORE_DRIVER", StoreDriverSQLite)
	t.Setenv("FOODDASH_STORE_PATH", "  ")

	if _, err := Load(); err == nil {
		t.Fatal("expected empty sqlite path to return an error")
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
