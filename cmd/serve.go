package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theirongolddev/breakeven/internal/logger"
	"github.com/theirongolddev/breakeven/internal/server"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr         string
	flagServeEventsBuffer int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the budget over HTTP with a live change stream",
	RunE:  runServe,
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe a running server",
	RunE:  runServeStatus,
}

func init() {
	serveCmd.PersistentFlags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	serveCmd.Flags().IntVar(&flagServeEventsBuffer, "events-buffer", 0, "Max in-memory events retained (default from config)")

	serveCmd.AddCommand(serveStatusCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	cfg := server.Config{
		Addr:         s.cfg.Server.Addr,
		EventsBuffer: s.cfg.Server.EventsBuffer,
		CORSOrigins:  s.cfg.Server.CORSOrigins,
		Worksheet:    s.worksheet.Name,
	}
	if flagServeAddr != "" {
		cfg.Addr = flagServeAddr
	}
	if flagServeEventsBuffer > 0 {
		cfg.EventsBuffer = flagServeEventsBuffer
	}

	svc := server.New(cfg, s.store, logger.Named(s.log, "server"))

	if !flagQuiet {
		fmt.Printf("  breakeven API listening on http://%s\n", cfg.Addr)
		fmt.Printf("  Worksheet: %s\n", s.title())
		fmt.Printf("  Live stream: http://%s/v1/stream\n", cfg.Addr)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runServeStatus(_ *cobra.Command, _ []string) error {
	addr := flagServeAddr
	if addr == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		addr = cfg.Server.Addr
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/v1/status") //nolint:noctx // short status probe
	if err != nil {
		fmt.Printf("  Server: unreachable (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  Server: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var st server.Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		fmt.Printf("  Server: malformed response (%v)\n", err)
		return nil
	}

	fmt.Printf("  Address:     http://%s\n", addr)
	fmt.Printf("  Started:     %s\n", st.StartedAt.Local().Format(time.RFC3339))
	if st.Worksheet != "" {
		fmt.Printf("  Worksheet:   %s\n", st.Worksheet)
	}
	fmt.Printf("  Version:     %d\n", st.Version)
	fmt.Printf("  Events:      %d\n", st.EventCount)
	fmt.Printf("  Subscribers: %d\n", st.SubscriberCount)
	return nil
}
