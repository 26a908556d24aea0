package board

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/hailam/chessmove/magicstore"
)

// InitOptions configures Init. The zero value runs the magic search fresh
// in memory every time, with no persisted state.
type InitOptions struct {
	// MagicStorePath, if non-empty, is a BadgerDB directory used to cache
	// discovered magic numbers across process runs. A missing, empty, or
	// corrupt store is not an error — Init falls back to a fresh search
	// and logs a warning.
	MagicStorePath string
}

var (
	initOnce    sync.Once
	initErr     error
	initCloser  io.Closer
	initialized bool
)

// Init performs the randomized magic-number search (or loads a verified
// cached set) exactly once per process. It must be called before
// constructing or operating on any Position; per spec.md §5, doing
// otherwise is a programming error. The returned io.Closer, if non-nil,
// owns the magic-number store and should be closed by the host on
// shutdown.
func Init(opts InitOptions) (io.Closer, error) {
	initOnce.Do(func() {
		if opts.MagicStorePath != "" {
			store, err := magicstore.Open(opts.MagicStorePath)
			if err != nil {
				log.Printf("[magicstore] unable to open store at %s: %v; running fresh search", opts.MagicStorePath, err)
			} else {
				initCloser = store
				if loadMagicsFrom(store) {
					initialized = true
					return
				}
				log.Printf("[magicstore] no usable cached magics at %s; running fresh search", opts.MagicStorePath)
			}
		}

		rng := newMagicPRNG(uint64(time.Now().UnixNano()) ^ 0x9E3779B97F4A7C15)
		initMagics(rng)
		initialized = true

		if store, ok := initCloser.(*magicstore.Store); ok {
			if err := saveMagicsTo(store); err != nil {
				log.Printf("[magicstore] failed to persist discovered magics: %v", err)
			}
		}
	})
	if !initialized {
		return initCloser, fmt.Errorf("board: initialization failed")
	}
	return initCloser, initErr
}

// loadMagicsFrom attempts to populate rookMagics/bishopMagics from a
// persisted snapshot, verifying each record still reproduces an
// internally consistent table before accepting it. Returns false (leaving
// the tables untouched) if the store is empty or any record fails
// verification.
func loadMagicsFrom(store *magicstore.Store) bool {
	snapshot, found, err := store.Load()
	if err != nil {
		log.Printf("[magicstore] load failed: %v", err)
		return false
	}
	if !found {
		return false
	}

	var rook, bishop [64]magicEntry
	for sq := Square(0); sq < 64; sq++ {
		entry, ok := rebuildEntry(sq, snapshot.Rook[sq], rookDirections, rookMask(sq))
		if !ok {
			return false
		}
		rook[sq] = entry

		entry, ok = rebuildEntry(sq, snapshot.Bishop[sq], bishopDirections, bishopMask(sq))
		if !ok {
			return false
		}
		bishop[sq] = entry
	}

	rookMagics = rook
	bishopMagics = bishop
	return true
}

// rebuildEntry reconstructs a magicEntry's dense table from a persisted
// (mask, magic, shift) record, rejecting it if the mask on file no longer
// matches the mask this build computes for sq (e.g. after a logic change),
// if the shift does not fit that mask's table size, or if the magic
// produces a destructive collision.
func rebuildEntry(sq Square, rec magicstore.Record, directions [4][2]int, currentMask Bitboard) (magicEntry, bool) {
	if rec.Mask != uint64(currentMask) {
		return magicEntry{}, false
	}
	if int(rec.Shift) != 64-currentMask.PopCount() {
		return magicEntry{}, false
	}

	size := 1 << currentMask.PopCount()
	table := make([]Bitboard, size)
	filled := make([]bool, size)
	ok := true
	subsets(currentMask, func(occ Bitboard) {
		if !ok {
			return
		}
		idx := (occ * Bitboard(rec.Magic)) >> rec.Shift
		attack := rayAttacks(sq, occ, directions)
		if !filled[idx] {
			filled[idx] = true
			table[idx] = attack
		} else if table[idx] != attack {
			ok = false
		}
	})
	if !ok {
		return magicEntry{}, false
	}
	return magicEntry{Mask: currentMask, Magic: rec.Magic, Shift: uint(rec.Shift), Table: table}, true
}

func saveMagicsTo(store *magicstore.Store) error {
	var snapshot magicstore.Snapshot
	for sq := Square(0); sq < 64; sq++ {
		snapshot.Rook[sq] = magicstore.Record{Mask: uint64(rookMagics[sq].Mask), Magic: rookMagics[sq].Magic, Shift: uint8(rookMagics[sq].Shift)}
		snapshot.Bishop[sq] = magicstore.Record{Mask: uint64(bishopMagics[sq].Mask), Magic: bishopMagics[sq].Magic, Shift: uint8(bishopMagics[sq].Shift)}
	}
	return store.Save(snapshot)
}

// LegalMoves returns the legal moves for the side to move, as UCI-style
// long-algebraic tokens, in the cache's iteration order.
func (p *Position) LegalMoves() []string {
	tokens := make([]string, len(p.legalMoves))
	for i, m := range p.legalMoves {
		tokens[i] = m.String()
	}
	return tokens
}

// LegalMovesFrom returns the destination-suffix tokens (to-square plus any
// promotion letter) of legal moves originating on squareName.
func (p *Position) LegalMovesFrom(squareName string) []string {
	from, err := ParseSquare(squareName)
	if err != nil {
		return nil
	}
	fromBB := SquareBB(from)
	var tokens []string
	for _, m := range p.legalMoves {
		if m.From != fromBB {
			continue
		}
		s := m.ToSquare().String()
		if m.Promotion != NoPieceType {
			s += string(promotionChars[m.Promotion])
		}
		tokens = append(tokens, s)
	}
	return tokens
}

// ApplyMove executes the move named by token. Per spec.md §7, token is
// assumed to name a currently legal move; behavior is undefined (may
// panic) if it doesn't.
func (p *Position) ApplyMove(token string) {
	from, to, promotion, err := parseMoveToken(token)
	if err != nil {
		panic("board: " + err.Error())
	}
	fromBB, toBB := SquareBB(from), SquareBB(to)
	for _, m := range p.legalMoves {
		if m.From == fromBB && m.To == toBB && m.Promotion == promotion {
			p.applyMove(m)
			return
		}
	}
	panic(fmt.Sprintf("board: %q is not a legal move in this position", token))
}
