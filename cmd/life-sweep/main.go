package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type runResult struct {
	workers    int
	elapsed    time.Duration
	population int
	final      *core.Grid
}

func (r runResult) gensPerSecond(steps int) float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(steps) / r.elapsed.Seconds()
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per run")
	workerList := flag.String("workers", defaultWorkerList(), "comma-separated worker counts to compare")
	seed := flag.Int64("seed", 1337, "seed for the initial board")
	var overrides kvList
	flag.Var(&overrides, "set", "engine override in key=value form (w, h, ups, workers; repeatable)")
	flag.Parse()

	kv := map[string]string{}
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("invalid override %q, want key=value", o)
		}
		kv[parts[0]] = parts[1]
	}
	base := life.FromMap(kv).WithSeed(*seed)
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	counts, err := parseWorkers(*workerList)
	if err != nil {
		log.Fatalf("invalid -workers: %v", err)
	}

	fmt.Printf("Grid %dx%d seed=%d steps=%d\n", base.Width, base.Height, *seed, *steps)

	var results []runResult
	for _, n := range counts {
		cfg := base
		cfg.Workers = n
		res, err := run(cfg, *steps)
		if err != nil {
			log.Fatalf("workers=%d: %v", n, err)
		}
		fmt.Printf("workers=%-3d elapsed=%-10s gen/s=%9.1f population=%d\n",
			n, res.elapsed.Round(time.Millisecond), res.gensPerSecond(*steps), res.population)
		results = append(results, res)
	}

	for _, res := range results[1:] {
		if !res.final.Equal(results[0].final) {
			log.Fatalf("workers=%d produced a different final board than workers=%d", res.workers, results[0].workers)
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].elapsed < results[j].elapsed })
	best := results[0]
	fmt.Printf("\nBest overall: workers=%d gen/s=%.1f (all %d runs agree on the final board)\n",
		best.workers, best.gensPerSecond(*steps), len(results))
}

func run(cfg life.Config, steps int) (runResult, error) {
	engine, err := life.New(cfg)
	if err != nil {
		return runResult{}, err
	}
	start := time.Now()
	for i := 0; i < steps; i++ {
		engine.Step()
	}
	elapsed := time.Since(start)

	final := core.NewGrid(cfg.Width, cfg.Height)
	final.CopyFrom(engine.Cells())
	return runResult{
		workers:    cfg.Workers,
		elapsed:    elapsed,
		population: engine.Population(),
		final:      final,
	}, nil
}

func parseWorkers(list string) ([]int, error) {
	var counts []int
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad worker count %q", part)
		}
		counts = append(counts, n)
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no worker counts given")
	}
	return counts, nil
}

func defaultWorkerList() string {
	var parts []string
	for n := 1; n <= runtime.NumCPU(); n *= 2 {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, ",")
}
