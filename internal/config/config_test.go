package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfigYAML = `server:
  address: ":8080"
db:
  host: "localhost"
  user: "app"
  password: "secret"
  name: "prefect_board"
  port: 5432
jwt:
  secret: "token_secret"
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatalf("mkdir configs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte(testConfigYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadAppliesDefaultsAndEnvOverrides(t *testing.T) {
	writeTestConfig(t)

	// 環境變量以底線對應巢狀鍵，要能覆蓋配置文件中的值
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("DB_PASSWORD", "from_env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Errorf("server address = %q, want %q", cfg.Server.Address, ":9090")
	}
	if cfg.DB.Password != "from_env" {
		t.Errorf("db password = %q, want %q", cfg.DB.Password, "from_env")
	}

	// 沒被覆蓋的值維持配置文件中的設置
	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 {
		t.Errorf("db host/port = %q/%d, want localhost/5432", cfg.DB.Host, cfg.DB.Port)
	}

	// 配置文件未指定時套用預設值
	if cfg.JWT.ExpireHours != 240 {
		t.Errorf("jwt expire hours = %d, want 240", cfg.JWT.ExpireHours)
	}
	if cfg.Announcements.SweepMinutes != 60 {
		t.Errorf("sweep minutes = %d, want 60", cfg.Announcements.SweepMinutes)
	}
}
