package config

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"glsb/gpu"
)

func writeConfig(g *WithT, dir, body string) string {
	path := filepath.Join(dir, "config.yaml")
	g.Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())
	return path
}

func TestLoadDefaults(t *testing.T) {
	g := NewWithT(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg).To(Equal(DefaultConfig()))
	g.Expect(cfg.Texture.FilterMode()).To(Equal(gpu.Linear))
	g.Expect(cfg.Texture.WrapMode()).To(Equal(gpu.ClampToBorder))
	g.Expect(cfg.GL.ContextOptions()).To(BeEmpty())
}

func TestLoadFile(t *testing.T) {
	g := NewWithT(t)
	path := writeConfig(g, t.TempDir(), `
window:
  width: 1280
  title: sandbox
gl:
  major: 3
  minor: 3
  max_transfer_size: 1048576
texture:
  filter: trilinear
  wrapping: repeat
  max_size: 512
logging:
  level: debug
`)

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Window.Width).To(Equal(1280))
	g.Expect(cfg.Window.Height).To(Equal(600))
	g.Expect(cfg.Window.Title).To(Equal("sandbox"))
	g.Expect(cfg.GL.Minor).To(Equal(3))
	g.Expect(cfg.GL.ContextOptions()).To(HaveLen(1))
	g.Expect(cfg.Texture.FilterMode()).To(Equal(gpu.Trilinear))
	g.Expect(cfg.Texture.WrapMode()).To(Equal(gpu.Repeat))
	g.Expect(cfg.Texture.MaxSize).To(Equal(512))
	g.Expect(cfg.Logging.Level).To(Equal("debug"))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	g := NewWithT(t)
	path := writeConfig(g, t.TempDir(), "window:\n  width: 1280\n")
	t.Setenv("GLSB_WINDOW_WIDTH", "1920")
	t.Setenv("GLSB_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(cfg.Window.Width).To(Equal(1920))
	g.Expect(cfg.Logging.Level).To(Equal("warn"))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	g := NewWithT(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(err).To(HaveOccurred())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	g := NewWithT(t)
	path := writeConfig(g, t.TempDir(), "texture:\n  filter: bicubic\n")

	_, err := Load(path)
	g.Expect(err).To(MatchError(ContainSubstring("texture.filter")))
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":      func(c *Config) { c.Window.Width = 0 },
		"gl too old":      func(c *Config) { c.GL.Major, c.GL.Minor = 3, 2 },
		"gl too new":      func(c *Config) { c.GL.Major, c.GL.Minor = 5, 0 },
		"bad minor":       func(c *Config) { c.GL.Major, c.GL.Minor = 3, 13 },
		"bad wrapping":    func(c *Config) { c.Texture.Wrapping = "clamp" },
		"negative size":   func(c *Config) { c.Texture.MaxSize = -1 },
		"unknown level":   func(c *Config) { c.Logging.Level = "trace" },
		"huge max upload": func(c *Config) { c.GL.MaxTransferSize = 1 << 63 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			g := NewWithT(t)
			cfg := DefaultConfig()
			mutate(cfg)
			g.Expect(cfg.Validate()).NotTo(Succeed())
		})
	}

	g := NewWithT(t)
	g.Expect(DefaultConfig().Validate()).To(Succeed())
}
