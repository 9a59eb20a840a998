// Package main implements a Z80 instruction disassembler
package main

import (
	"errors"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/z80disasm/internal/app"
	"github.com/retroenv/z80disasm/internal/cli"
	"github.com/retroenv/z80disasm/internal/config"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateProgramLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid arguments", err)
		}
		os.Exit(1)
	}

	logger := config.CreateProgramLogger(opts)
	app.PrintBanner(logger, opts, version, commit, date)

	stats, err := app.Process(logger, opts, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("Disassembling failed", err)
		os.Exit(1)
	}

	logger.Debug("Disassembling finished",
		log.Int("decoded", stats.Decoded),
		log.Int("undefined", stats.Undefined))
}
