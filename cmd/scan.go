package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	config "github.com/thirdweb-dev/safecosts/configs"
	"github.com/thirdweb-dev/safecosts/internal/common"
	"github.com/thirdweb-dev/safecosts/internal/orchestrator"
	"github.com/thirdweb-dev/safecosts/internal/report"
	"github.com/thirdweb-dev/safecosts/internal/rpc"
)

func RunScan(cmd *cobra.Command, args []string) error {
	toAddresses, err := common.ReadAddressFile(args[0])
	if err != nil {
		return err
	}
	startBlock, err := parseStartBlock(args[1])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case sig := <-sigChan:
			log.Info().Msgf("Received signal %v, aborting scan", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if config.Cfg.Metrics.Enabled {
		startMetricsServer(config.Cfg.Metrics.Addr)
	}

	client, err := rpc.Initialize(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	var uploader report.Uploader
	if config.Cfg.Reports.S3.Bucket != "" {
		s3Uploader, err := report.NewS3Uploader(ctx, config.Cfg.Reports.S3)
		if err != nil {
			return err
		}
		uploader = s3Uploader
	}
	writer := report.NewWriter(config.Cfg.Reports.Dir, config.Cfg.Reports.Parquet.Enabled, uploader)

	o, err := orchestrator.NewOrchestrator(client, toAddresses, writer)
	if err != nil {
		return err
	}

	log.Info().Str("rpc", client.GetURL()).Int("addresses", len(toAddresses)).Msg("Starting safecosts")
	result, err := o.Run(ctx, startBlock)
	if err != nil {
		return err
	}

	for _, file := range result.Files {
		log.Info().Str("file", file).Msg("Wrote report")
	}
	return report.PrintCosts(cmd.OutOrStdout(), result.Costs)
}

func parseStartBlock(value string) (uint64, error) {
	value = strings.TrimSpace(value)
	startBlock, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: start block %q is out of range", common.ErrInvalidArgument, value)
		}
		return 0, fmt.Errorf("%w: start block must be a non-negative integer, got %q", common.ErrInvalidArgument, value)
	}
	return startBlock, nil
}

func startMetricsServer(addr string) {
	log.Info().Msgf("Starting Metrics Server on %s", addr)
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Msg("Metrics server error")
		}
	}()
}
