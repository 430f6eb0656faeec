// Command cachesim is the interactive console driver for the cache.
//
// It obtains a policy and capacity (from a yaml config file or by
// prompting), builds one cache through the public contract, and then
// loops on get/put/display/exit commands. All cache behavior lives
// behind that contract; this program only moves text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	cache "github.com/cachelab/policycache"
	"github.com/cachelab/policycache/eviction"
	"github.com/cachelab/policycache/sim"
	"github.com/cachelab/policycache/types"
)

// policyMenu maps the numeric menu choices to policy types.
var policyMenu = map[string]eviction.PolicyType{
	"1": eviction.LRU,
	"2": eviction.MRU,
	"3": eviction.LFU,
	"4": eviction.FIFO,
}

func main() {
	configPath := flag.String("config", "", "path to yaml config (skips the interactive prompts)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("cachesim failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := sim.DefaultConfig()
	stdin := bufio.NewReader(os.Stdin)

	if configPath != "" {
		var err error
		cfg, err = sim.LoadConfig(configPath)
		if err != nil {
			return err
		}
	} else {
		var err error
		cfg.Policy, err = promptPolicy(stdin)
		if err != nil {
			return err
		}
		cfg.Capacity, err = promptCapacity(stdin)
		if err != nil {
			return err
		}
	}

	setupLogger(cfg)

	counters := &types.Counters{}
	c, err := cache.New[string, string](cfg.Policy, cfg.Capacity,
		cache.WithMetrics[string, string](counters))
	if err != nil {
		return err
	}
	slog.Info("cache ready", "policy", cfg.Policy, "capacity", cfg.Capacity)

	fmt.Println("Commands: get <key> | put <key> <value> | display | exit")
	if err := sim.NewSession(c).Run(stdin, os.Stdout); err != nil {
		return err
	}

	slog.Info("session finished",
		"hits", counters.Hits,
		"misses", counters.Misses,
		"inserts", counters.Inserts,
		"updates", counters.Updates,
		"evictions", counters.Evictions,
	)
	return nil
}

// promptPolicy shows the policy menu once. An invalid choice is fatal:
// no cache is created and the program terminates.
func promptPolicy(in *bufio.Reader) (eviction.PolicyType, error) {
	fmt.Println("Choose Cache Policy:")
	fmt.Println("1. LRU (Least Recently Used)")
	fmt.Println("2. MRU (Most Recently Used)")
	fmt.Println("3. LFU (Least Frequently Used)")
	fmt.Println("4. FIFO (First In First Out)")
	fmt.Print("Enter choice: ")

	choice, err := readLine(in)
	if err != nil {
		return "", err
	}
	policy, ok := policyMenu[choice]
	if !ok {
		return "", fmt.Errorf("invalid policy choice %q", choice)
	}
	return policy, nil
}

// promptCapacity asks until it gets a valid non-negative integer.
func promptCapacity(in *bufio.Reader) (int, error) {
	for {
		fmt.Print("Enter cache capacity: ")
		line, err := readLine(in)
		if err != nil {
			return 0, err
		}
		capacity, err := strconv.Atoi(line)
		if err != nil || capacity < 0 {
			fmt.Println("Capacity must be a non-negative integer.")
			continue
		}
		return capacity, nil
	}
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func setupLogger(cfg sim.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
