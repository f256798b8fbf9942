package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"

	"github.com/yourorg/cafe-checkout/internal/adapter"
	"github.com/yourorg/cafe-checkout/internal/adapter/paypal"
	"github.com/yourorg/cafe-checkout/internal/adapter/qiwi"
	"github.com/yourorg/cafe-checkout/internal/adapter/stripe"
	"github.com/yourorg/cafe-checkout/internal/beverage"
	"github.com/yourorg/cafe-checkout/internal/config"
	"github.com/yourorg/cafe-checkout/internal/logging"
	"github.com/yourorg/cafe-checkout/internal/metrics"
	"github.com/yourorg/cafe-checkout/internal/notify"
	"github.com/yourorg/cafe-checkout/internal/processor"
	qiwiclient "github.com/yourorg/cafe-checkout/internal/provider/qiwi"
	stripeclient "github.com/yourorg/cafe-checkout/internal/provider/stripe"
	"github.com/yourorg/cafe-checkout/internal/reporting"
	"github.com/yourorg/cafe-checkout/internal/telemetry"
)

type charge struct {
	provider string
	amount   int64
}

var demoCharges = []charge{
	{provider: paypal.ProviderName, amount: 2000},
	{provider: stripeclient.ProviderName, amount: 3500},
	{provider: qiwiclient.ProviderName, amount: 1500},
}

// app holds the wiring shared by the demo sections.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	collector *metrics.Collector
	tracing   *telemetry.Provider
}

func newApp(cfg *config.Config, logger *zap.Logger, reg prometheus.Registerer, traceOut io.Writer) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	if cfg.Metrics.Enabled {
		c, err := metrics.NewCollector(reg)
		if err != nil {
			return nil, fmt.Errorf("register payment metrics: %w", err)
		}
		a.collector = c
	}

	tp, err := telemetry.NewTracerProvider(traceOut, cfg.Tracing.Enabled)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	a.tracing = tp
	return a, nil
}

// wrap layers tracing and metrics around a payment handler.
func (a *app) wrap(h adapter.NamedProcessor) adapter.NamedProcessor {
	if a.collector != nil {
		h = a.collector.Instrument(h)
	}
	return telemetry.Trace(h, a.tracing.Tracer())
}

func (a *app) run(out io.Writer) {
	symbol := a.cfg.CurrencySymbol

	fmt.Fprintln(out, "=== DECORATOR PATTERN ===")
	var drink beverage.Beverage = beverage.Espresso{}
	drink = beverage.NewMilk(drink)
	drink = beverage.NewSugar(drink)
	drink = beverage.NewWhippedCream(drink)

	fmt.Fprintf(out, "Order: %s\n", drink.Description())
	fmt.Fprintf(out, "Total: %d %s\n", drink.Cost(), symbol)
	a.logger.Info("order composed", zap.String("description", drink.Description()), zap.Int64("cost", drink.Cost()))

	fmt.Fprintln(out, "\n=== ADAPTER PATTERN ===")
	recorder := notify.NewRecorder()
	sink := notify.Fanout{notify.NewConsoleSink(out, a.logger), recorder}

	proc := processor.NewProcessor(a.logger,
		a.wrap(paypal.NewPayPalProcessor(sink, symbol)),
		a.wrap(stripe.NewStripeAdapter(stripeclient.NewPaymentService(sink, symbol))),
		a.wrap(qiwi.NewQiwiAdapter(qiwiclient.NewPaymentService(sink, symbol))),
	)

	for _, c := range demoCharges {
		if err := proc.Charge(c.provider, c.amount); err != nil {
			a.logger.Error("charge failed", zap.String("provider", c.provider), zap.Error(err))
		}
	}

	summary := reporting.Summarize(recorder.Notifications())
	fmt.Fprintf(out, "Receipt: %d payments, %d %s charged\n", summary.TotalCharges, summary.TotalAmount, symbol)
	fmt.Fprintln(out, "\nAll payments completed successfully ✅")
}

func (a *app) shutdown(ctx context.Context) {
	if err := a.tracing.Shutdown(ctx); err != nil {
		a.logger.Warn("tracer shutdown", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// newPlainApp wires the demo without metrics or tracing. It cannot fail.
func newPlainApp(cfg *config.Config, logger *zap.Logger) *app {
	return &app{cfg: cfg, logger: logger, tracing: telemetry.NewNoopProvider()}
}

// execute runs the demo once. Instrumentation failures degrade to plain
// handlers; the demo itself always runs.
func execute(cfg *config.Config, logger *zap.Logger, reg *prometheus.Registry, stdout, stderr io.Writer) {
	a, err := newApp(cfg, logger, reg, stderr)
	if err != nil {
		logger.Warn("falling back to uninstrumented handlers", zap.Error(err))
		a = newPlainApp(cfg, logger)
	}

	a.run(stdout)

	if a.collector != nil {
		if err := dumpMetrics(stderr, reg); err != nil {
			logger.Warn("dump metrics", zap.Error(err))
		}
	}
	a.shutdown(context.Background())
}

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Printf("Error reading config, using defaults: %v", err)
		cfg = config.Default()
	}

	logger, err := logging.NewLogger(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Printf("Error creating logger: %v", err)
		logger = zap.NewNop()
	}

	execute(cfg, logger, prometheus.NewRegistry(), os.Stdout, os.Stderr)
}
