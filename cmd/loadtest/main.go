package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	webshopv1 "github.com/vladislavdragonenkov/webshop/api/webshop/v1"
	"github.com/vladislavdragonenkov/webshop/internal/version"
)

type loadMode string

const (
	modeOrderStatus   loadMode = "order-status"
	modeProfileUpdate loadMode = "profile-update"
	modeCreateOrder   loadMode = "create-order"
)

type config struct {
	addr         string
	total        int
	totalSet     bool
	duration     time.Duration
	concurrency  int
	connections  int
	timeout      time.Duration
	mode         loadMode
	email        string
	password     string
	orderID      int64
	profileEmail string
	customerID   int64
	articleNo    string
	quantity     int32
	outputPath   string
}

func readConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("loadtest", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cfg       config
		modeValue string
		quantity  int
	)
	fs.StringVar(&cfg.addr, "addr", "localhost:50051", "gRPC target address")
	fs.IntVar(&cfg.total, "total", 400, "total scenarios in count mode; in duration mode only used when explicitly set")
	fs.DurationVar(&cfg.duration, "duration", 0, "optional time-based run duration (e.g. 1m)")
	fs.IntVar(&cfg.concurrency, "concurrency", 40, "number of concurrent workers")
	fs.IntVar(&cfg.connections, "connections", 8, "number of gRPC client connections")
	fs.DurationVar(&cfg.timeout, "timeout", 5*time.Second, "per-RPC timeout")
	fs.StringVar(&modeValue, "mode", string(modeOrderStatus), "load mode: order-status | profile-update | create-order")
	fs.StringVar(&cfg.email, "email", "admin@hs-karlsruhe.de", "caller email")
	fs.StringVar(&cfg.password, "password", "pass", "caller password")
	fs.Int64Var(&cfg.orderID, "order-id", 700, "order updated in order-status mode")
	fs.StringVar(&cfg.profileEmail, "profile-email", "max@hs-karlsruhe.de", "profile updated in profile-update mode")
	fs.Int64Var(&cfg.customerID, "customer-id", 2, "customer of orders in create-order mode; 0 means the caller")
	fs.StringVar(&cfg.articleNo, "article", "VZ90/10", "article ordered in create-order mode")
	fs.IntVar(&quantity, "quantity", 1, "quantity per order in create-order mode")
	fs.StringVar(&cfg.outputPath, "output", "", "optional JSON report output file path")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "total" {
			cfg.totalSet = true
		}
	})

	mode, err := parseMode(modeValue)
	if err != nil {
		return config{}, err
	}
	cfg.mode = mode
	cfg.quantity = int32(quantity)

	switch {
	case cfg.duration < 0:
		return config{}, errors.New("duration must be >= 0")
	case cfg.duration == 0 && cfg.total <= 0:
		return config{}, errors.New("total must be > 0 when duration is not set")
	case cfg.duration > 0 && cfg.totalSet && cfg.total <= 0:
		return config{}, errors.New("total must be > 0 when explicitly set with duration")
	case cfg.concurrency <= 0:
		return config{}, errors.New("concurrency must be > 0")
	case cfg.connections <= 0:
		return config{}, errors.New("connections must be > 0")
	case cfg.timeout <= 0:
		return config{}, errors.New("timeout must be > 0")
	case strings.TrimSpace(cfg.email) == "":
		return config{}, errors.New("email is required")
	case quantity <= 0 || quantity > 1<<31-1:
		return config{}, errors.New("quantity must be a positive int32")
	case cfg.mode == modeOrderStatus && cfg.orderID <= 0:
		return config{}, errors.New("order-id must be > 0")
	case cfg.mode == modeProfileUpdate && strings.TrimSpace(cfg.profileEmail) == "":
		return config{}, errors.New("profile-email is required")
	case cfg.mode == modeCreateOrder && strings.TrimSpace(cfg.articleNo) == "":
		return config{}, errors.New("article is required")
	}
	return cfg, nil
}

func parseMode(value string) (loadMode, error) {
	switch mode := loadMode(strings.TrimSpace(value)); mode {
	case modeOrderStatus, modeProfileUpdate, modeCreateOrder:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported mode: %s", value)
	}
}

func main() {
	cfg, err := readConfig(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := run(ctx, cfg)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "load test failed: %v\n", err)
		os.Exit(1)
	}

	printReport(os.Stdout, result, runTarget(cfg))
	if cfg.outputPath != "" {
		if err := writeJSONReport(cfg.outputPath, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
			os.Exit(1)
		}
	}
	if result.FailedScenarios > 0 || (result.Stock != nil && (!result.Stock.Consistent || result.Stock.Oversold)) {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) (report, error) {
	conns := make([]*grpc.ClientConn, 0, cfg.connections)
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	pool := make([]clients, 0, cfg.connections)
	for i := 0; i < cfg.connections; i++ {
		conn, err := grpc.NewClient(cfg.addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithPerRPCCredentials(webshopv1.BasicCredentials{Email: cfg.email, Password: cfg.password}),
			grpc.WithUserAgent(version.UserAgent("loadtest")),
		)
		if err != nil {
			return report{}, fmt.Errorf("create grpc client connection: %w", err)
		}
		conns = append(conns, conn)
		pool = append(pool, newClients(conn))
	}

	startedAt := time.Now()
	r := &runner{
		cfg:   cfg,
		col:   newCollector(),
		runID: fmt.Sprintf("%d-%d", startedAt.UnixNano(), os.Getpid()),
	}
	return r.execute(ctx, pool, startedAt)
}

// execute раздаёт сценарии воркерам и собирает отчёт. В режиме create-order
// остаток артикула читается до и после нагрузки.
func (r *runner) execute(ctx context.Context, pool []clients, startedAt time.Time) (report, error) {
	var initial int32
	if r.cfg.mode == modeCreateOrder {
		qty, err := r.articleQuantity(pool[0])
		if err != nil {
			return report{}, err
		}
		initial = qty
	}

	jobs := make(chan int, r.cfg.concurrency*2)
	var g errgroup.Group
	for workerID := 0; workerID < r.cfg.concurrency; workerID++ {
		cli := pool[workerID%len(pool)]
		g.Go(func() error {
			for index := range jobs {
				r.runScenario(cli, index)
			}
			return nil
		})
	}
	dispatchJobs(ctx, jobs, r.cfg)
	_ = g.Wait()

	result := r.col.buildReport(r.cfg.mode, startedAt, time.Since(startedAt))
	if r.cfg.mode == modeCreateOrder {
		final, err := r.articleQuantity(pool[0])
		if err != nil {
			return result, err
		}
		ordered := r.col.successes("CreateOrder") * int64(r.cfg.quantity)
		stock := checkStock(r.cfg.articleNo, initial, final, ordered)
		result.Stock = &stock
	}
	return result, nil
}

func dispatchJobs(ctx context.Context, jobs chan<- int, cfg config) {
	defer close(jobs)

	var deadline <-chan time.Time
	if cfg.duration > 0 {
		timer := time.NewTimer(cfg.duration)
		defer timer.Stop()
		deadline = timer.C
	}
	limited := cfg.duration <= 0 || cfg.totalSet

	for i := 0; !limited || i < cfg.total; i++ {
		select {
		case <-ctx.Done():
			return
		case <-deadline:
			return
		case jobs <- i:
		}
	}
}

func runTarget(cfg config) string {
	if cfg.duration <= 0 {
		return fmt.Sprintf("count:%d", cfg.total)
	}
	if cfg.totalSet {
		return fmt.Sprintf("duration:%s,max-total:%d", cfg.duration, cfg.total)
	}
	return fmt.Sprintf("duration:%s", cfg.duration)
}
