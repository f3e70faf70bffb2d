// Command partitiond serves Euler's partition function P(n) over HTTP,
// memoizing every value it computes for the lifetime of the process.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/eulerfn/partitionfn/httpapi"
	"github.com/eulerfn/partitionfn/partition"
	"github.com/eulerfn/partitionfn/partition/store"
)

func main() {
	var (
		addr      = flag.String("addr", ":8080", "listen address")
		storeName = flag.String("store", "memory", "cache backend: memory, sharded, rotating, lru, ristretto, memdb")
		bound     = flag.Int("bound", 4096, "entry bound for bounded backends")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("fail to build logger: %v", err))
	}
	defer logger.Sync()

	st, err := newStore(*storeName, *bound)
	if err != nil {
		logger.Fatal("fail to build store", zap.String("store", *storeName), zap.Error(err))
	}

	evaluator := partition.New(
		partition.WithStore(st),
		partition.WithLogger(logger),
	)
	server := httpapi.NewServer(evaluator, logger)

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		zap.String("addr", *addr),
		zap.String("store", *storeName),
	)
	if err := httpServer.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newStore(name string, bound int) (store.Store, error) {
	switch name {
	case "memory":
		return store.NewInMemory(), nil
	case "sharded":
		return store.NewSharded(16), nil
	case "rotating":
		return store.NewRotating(bound), nil
	case "lru":
		return store.NewLRU(bound)
	case "ristretto":
		return store.NewRistretto(int64(bound))
	case "memdb":
		return store.NewMemDB()
	default:
		return nil, fmt.Errorf("unknown store: %s", name)
	}
}
