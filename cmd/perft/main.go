// Command perft is a thin audit driver over board.Perft: given a position
// string and a depth, it prints the node count at each depth from 1 up to
// the requested depth, and optionally checks the final count against a
// published total.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hailam/chessmove/board"
	"github.com/hailam/chessmove/perftcache"
	"github.com/hailam/chessmove/storage"
)

func main() {
	fen := flag.String("fen", "", "position string (defaults to the starting position)")
	depth := flag.Int("depth", 5, "maximum perft depth")
	expect := flag.Int64("expect", -1, "published node count to check the final depth against (-1 skips the check)")
	store := flag.Bool("store", false, "persist discovered magic numbers to the default on-disk store")
	cache := flag.Bool("cache", false, "memoize per-depth node counts in the default on-disk perft cache")
	flag.Parse()

	var opts board.InitOptions
	if *store {
		path, err := storage.DefaultMagicStorePath()
		if err != nil {
			log.Fatalf("perft: resolving magic store path: %v", err)
		}
		opts.MagicStorePath = path
	}

	closer, err := board.Init(opts)
	if err != nil {
		log.Fatalf("perft: init: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	var pos *board.Position
	if *fen == "" {
		pos = board.StartPosition()
	} else {
		pos, err = board.ParsePosition(*fen)
		if err != nil {
			log.Fatalf("perft: parsing position: %v", err)
		}
	}
	fenText := pos.ToFEN()

	var cacheStore *perftcache.Store
	if *cache {
		path, err := storage.DefaultPerftCachePath()
		if err != nil {
			log.Fatalf("perft: resolving perft cache path: %v", err)
		}
		cacheStore, err = perftcache.Open(path)
		if err != nil {
			log.Printf("[perftcache] unable to open cache at %s: %v; running uncached", path, err)
			cacheStore = nil
		} else {
			defer cacheStore.Close()
		}
	}

	var final int64
	for d := 1; d <= *depth; d++ {
		nodes, hit := lookupOrCompute(pos, fenText, d, cacheStore)
		if hit {
			fmt.Printf("depth %d: %d nodes (cached)\n", d, nodes)
		} else {
			fmt.Printf("depth %d: %d nodes\n", d, nodes)
		}
		final = nodes
	}

	if *expect >= 0 && final != *expect {
		fmt.Fprintf(os.Stderr, "perft: mismatch at depth %d: got %d, expected %d\n", *depth, final, *expect)
		os.Exit(1)
	}
}

// lookupOrCompute returns the perft node count for (pos, depth), consulting
// cacheStore first when one is open and persisting freshly computed counts
// back to it.
func lookupOrCompute(pos *board.Position, fenText string, depth int, cacheStore *perftcache.Store) (int64, bool) {
	if cacheStore != nil {
		if count, found, err := cacheStore.Get(fenText, depth); err != nil {
			log.Printf("[perftcache] lookup failed: %v", err)
		} else if found {
			return count, true
		}
	}

	nodes := board.Perft(pos, depth)

	if cacheStore != nil {
		if err := cacheStore.Put(fenText, depth, nodes); err != nil {
			log.Printf("[perftcache] persist failed: %v", err)
		}
	}

	return nodes, false
}
