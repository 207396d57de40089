package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/petoverse-api/internal/config"
	"github.com/KirkDiggler/petoverse-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(body string) string {
	path := filepath.Join(s.dir, "petoverse.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal(50051, cfg.Server.Port)
	s.Equal("test@example.com", cfg.Auth.DemoEmail)
	s.Equal("password", cfg.Auth.DemoPassword)
	s.Equal(time.Second, cfg.Latency.Login)
	s.Equal(2*time.Second, cfg.Latency.Claim)
	s.Equal(24*time.Hour, cfg.Drafts.TTL)
	s.Equal(time.Hour, cfg.Thinker.Interval)
	s.Empty(cfg.Redis.Endpoint)
}

func (s *ConfigTestSuite) TestOverlay() {
	path := s.write(`
server:
  port: 6000
redis:
  endpoint: localhost:6379
latency:
  claim: 250ms
thinker:
  interval: 0s
log:
  level: debug
  human: true
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal(6000, cfg.Server.Port)
	s.Equal("localhost:6379", cfg.Redis.Endpoint)
	s.Equal(250*time.Millisecond, cfg.Latency.Claim)
	s.Equal(time.Second, cfg.Latency.Login, "untouched keys keep defaults")
	s.Zero(cfg.Thinker.Interval)
	s.Equal("debug", cfg.Log.Level)
	s.True(cfg.Log.Human)
}

func (s *ConfigTestSuite) TestValidationFailures() {
	s.Run("bad port and email", func() {
		path := s.write(`
server:
  port: 70000
auth:
  demo_email: not-an-email
`)
		_, err := config.Load(path)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "Config.Server.Port")
		s.Contains(err.Error(), "Config.Auth.DemoEmail")
	})

	s.Run("unknown log level", func() {
		_, err := config.Load(s.write("log:\n  level: loud\n"))
		s.Require().Error(err)
		s.Contains(err.Error(), "Config.Log.Level")
	})

	s.Run("malformed yaml", func() {
		_, err := config.Load(s.write("server: [unclosed"))
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing file", func() {
		_, err := config.Load(filepath.Join(s.dir, "absent.yaml"))
		s.Error(err)
	})
}
