// cmd/tools/template-export/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"bizplan-engine/internal/common/config"
	"bizplan-engine/internal/common/logger"
	"bizplan-engine/internal/registry"
	"bizplan-engine/internal/store"
	"bizplan-engine/pkg/bundle"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	exportOut := exportCmd.String("out", "templates-export.json", "Output file for the template bundle")
	importIn := importCmd.String("in", "", "Template bundle file to import")
	importDry := importCmd.Bool("dry-run", false, "Report what would be imported without persisting")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	log := logger.NewStructured("warn", "console")

	cfg, err := config.Load()
	if err != nil {
		fatal("config load failed: %v", err)
	}

	st := store.NewRedis(cfg.Redis)
	defer st.Close()

	ctx := context.Background()
	if err := st.Ping(ctx); err != nil {
		fatal("redis unavailable at %s: %v", cfg.Redis.Address, err)
	}

	reg := registry.New(log, st)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		runExport(reg, *exportOut)
	case "import":
		importCmd.Parse(os.Args[2:])
		if *importIn == "" {
			fmt.Println("Error: -in is required for import.")
			importCmd.Usage()
			os.Exit(1)
		}
		runImport(ctx, reg, *importIn, *importDry)
	default:
		help()
		os.Exit(1)
	}
}

func runExport(reg *registry.Registry, path string) {
	b := reg.Export()
	if err := b.WriteFile(path); err != nil {
		fatal("write %s: %v", path, err)
	}
	fmt.Printf("Exported %d built-in and %d custom templates to %s\n", len(b.Default), len(b.Custom), path)
}

func runImport(ctx context.Context, reg *registry.Registry, path string, dryRun bool) {
	raw, err := bundle.LoadFile(path)
	if err != nil {
		fatal("read %s: %v", path, err)
	}

	if dryRun {
		fmt.Printf("Bundle contains %d custom templates (export date %s):\n", len(raw.Custom), raw.ExportDate)
		for id := range raw.Custom {
			fmt.Printf("  %s\n", id)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read %s: %v", path, err)
	}
	report, err := reg.Import(ctx, data)
	if err != nil {
		fatal("import failed: %v", err)
	}

	fmt.Printf("Imported %d templates.\n", len(report.Imported))
	for _, id := range report.Imported {
		fmt.Printf("  + %s\n", id)
	}
	if len(report.Skipped) > 0 {
		fmt.Printf("Skipped %d entries:\n", len(report.Skipped))
		for _, s := range report.Skipped {
			fmt.Printf("  - %s: %s\n", s.ID, s.Reason)
		}
	}
	out, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(out))
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func help() {
	fmt.Println("Usage: template-export <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  export   Write the full template set to a bundle file")
	fmt.Println("  import   Register custom templates from a bundle file")
	fmt.Println()
	fmt.Println("Run 'template-export <command> -h' for command flags.")
}
