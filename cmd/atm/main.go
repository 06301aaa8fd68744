package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/config"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/console"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/data/flatfile"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/engine"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/logger"
)

func main() {
	// Optional .env for local runs; viper reads the environment after it
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg)

	store := flatfile.NewStore(log, cfg.Ledger.AccountsFile)
	if err := store.Load(); err != nil {
		// A malformed ledger is startup-fatal: the terminal must not run
		// against partial account data.
		log.Error("account ledger unusable", "error", err)
		fmt.Fprintf(os.Stderr, "cannot start: %v\n", err)
		os.Exit(1)
	}

	translog := flatfile.NewTransactionLog(log, cfg.Ledger.TransactionLogFile)

	eng := engine.New(log, store, translog, engine.Limits{
		Withdrawal: cfg.Limits.Withdrawal,
		Transfer:   cfg.Limits.Transfer,
		PayBill:    cfg.Limits.PayBill,
	})

	term := console.New(log, eng, os.Stdin, os.Stdout)
	if err := term.Run(); err != nil {
		log.Error("terminal stopped", "error", err)
		os.Exit(1)
	}
}
