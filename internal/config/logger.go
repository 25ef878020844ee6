package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const productionEnv = "production"

type logger struct {
	Env        string `yaml:"env"`
	Name       string `yaml:"name"`
	zap.Config `yaml:",inline"`
}

func (l *logger) encoderConfig() zapcore.EncoderConfig {
	if l.Env == productionEnv {
		return zap.NewProductionEncoderConfig()
	}
	return zap.NewDevelopmentEncoderConfig()
}

// applyDefaults fills what the file leaves out: info level, console
// encoding and stderr for both outputs. Production loggers are sampled.
func (l *logger) applyDefaults() {
	if l.Env == productionEnv && l.Sampling == nil {
		l.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}
	if l.Level == (zap.AtomicLevel{}) {
		l.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if len(l.Encoding) == 0 {
		l.Encoding = "console"
	}
	if len(l.OutputPaths) == 0 {
		l.OutputPaths = []string{"stderr"}
	}
	if len(l.ErrorOutputPaths) == 0 {
		l.ErrorOutputPaths = []string{"stderr"}
	}
	l.EncoderConfig = l.encoderConfig()
}

// BuildLogger builds the configured zap logger, named after the logger
// name when one is set.
func (c *Config) BuildLogger(opts ...zap.Option) (*zap.Logger, error) {
	c.Logger.applyDefaults()
	log, err := c.Logger.Build(opts...)
	if err != nil {
		return nil, err
	}
	if len(c.Logger.Name) > 0 {
		log = log.Named(c.Logger.Name)
	}
	return log, nil
}
