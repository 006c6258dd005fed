package logging

import (
	"go.uber.org/zap"
)

// Logger is a nop until Init is called, so library-style callers and tests
// need no setup.
var Logger = zap.NewNop().Sugar()

func Init(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("init logger: " + err.Error())
	}
	Logger = logger.Sugar()
}
