//go:build js && wasm

// Command hostelui-wasm is the browser entry point. Build with
// GOOS=js GOARCH=wasm and load it next to wasm_exec.js; the variant is
// chosen with a data-hostelui-variant attribute on <body>.
package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	hostelui "github.com/goliatone/go-hostelui"
	"github.com/goliatone/go-hostelui/pkg/dom/jsdoc"
	"github.com/goliatone/go-hostelui/pkg/variant"
)

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	doc := jsdoc.New()
	doc.OnReady(func() {
		name := variant.DefaultName
		if body := doc.Body(); body != nil {
			if v, ok := body.Attr("data-hostelui-variant"); ok && v != "" {
				name = v
			}
		}
		if _, err := hostelui.Wire(doc, hostelui.DefaultVariant(name), hostelui.WithLogger(logger)); err != nil {
			logger.Error("wire page", zap.String("variant", name), zap.Error(err))
		}
	})

	// Handlers run on callbacks from the page; keep the module alive.
	select {}
}

// newLogger writes console-encoded entries to stdout, which wasm_exec.js
// forwards to the browser console.
func newLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stdout"}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
