// zipper-bench measures the library's core operations on large sequences:
// O(1) navigation, lazy position scans, forward search, and reconstruction.
package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/schmmd/zipper"
)

const (
	seqSize   = 1 << 20 // 1M elements
	moveOps   = 10_000_000
	scanRuns  = 20
	raiseRuns = 20
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

func main() {
	fmt.Println("Zipper Benchmark")
	fmt.Println("================")
	fmt.Printf("Sequence size: %d elements\n", seqSize)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	rng := rand.New(rand.NewSource(1))
	vals := make([]int, seqSize)
	for i := range vals {
		vals[i] = rng.Intn(1000)
	}

	fmt.Println("Building sequence...")
	start := time.Now()
	s := zipper.FromSlice(vals)
	results := []BenchResult{{Name: "Build sequence", Duration: time.Since(start)}}
	fmt.Println(results[0])
	fmt.Println()

	z, err := zipper.FromSeq(s)
	if err != nil {
		panic(err)
	}

	var benches []func() BenchResult
	benches = append(benches,
		func() BenchResult { return benchMoves(z) },
		func() BenchResult { return benchScan(z) },
		func() BenchResult { return benchFindNext(z) },
		func() BenchResult { return benchReconstruct(z) },
		func() BenchResult { return benchRaisePeak(s) },
	)

	fmt.Println("Running benchmarks...")
	for _, bench := range benches {
		result := bench()
		results = append(results, result)
		fmt.Println(result)
	}

	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("-------")
	for _, r := range results {
		fmt.Println(r)
	}
}

// benchMoves bounces the cursor across the sequence with O(1) moves.
func benchMoves(z zipper.Zipper[int]) BenchResult {
	start := time.Now()
	dir := 1
	for i := 0; i < moveOps; i++ {
		var (
			next zipper.Zipper[int]
			err  error
		)
		if dir > 0 {
			next, err = z.MoveRight()
		} else {
			next, err = z.MoveLeft()
		}
		if err != nil {
			dir = -dir
			continue
		}
		z = next
	}
	return BenchResult{Name: "MoveLeft/MoveRight", Duration: time.Since(start), Ops: moveOps}
}

// benchScan walks every position lazily, end to end.
func benchScan(z zipper.Zipper[int]) BenchResult {
	start := time.Now()
	total := 0
	for i := 0; i < scanRuns; i++ {
		for range z.Positions() {
			total++
		}
	}
	return BenchResult{
		Name:     "Positions full scan",
		Duration: time.Since(start),
		Ops:      total,
		Extra:    fmt.Sprintf("(%d runs)", scanRuns),
	}
}

// benchFindNext searches for the first peak.
func benchFindNext(z zipper.Zipper[int]) BenchResult {
	start := time.Now()
	found := 0
	for i := 0; i < scanRuns; i++ {
		if _, err := zipper.FindNext(z.Positions(), zipper.IsPeak[int]); err == nil {
			found++
		}
	}
	return BenchResult{
		Name:     "FindNext first peak",
		Duration: time.Since(start),
		Ops:      scanRuns,
		Extra:    fmt.Sprintf("(%d hits)", found),
	}
}

// benchReconstruct rebuilds the sequence from a mid-sequence cursor.
func benchReconstruct(z zipper.Zipper[int]) BenchResult {
	mid, err := z.Seek(seqSize / 2)
	if err != nil {
		panic(err)
	}
	start := time.Now()
	for i := 0; i < scanRuns; i++ {
		if mid.Seq().Len() != seqSize {
			panic("bad reconstruction")
		}
	}
	return BenchResult{Name: "Seq reconstruction", Duration: time.Since(start), Ops: scanRuns}
}

// benchRaisePeak runs the two-pass algorithm end to end.
func benchRaisePeak(s zipper.Seq[int]) BenchResult {
	start := time.Now()
	raised := 0
	for i := 0; i < raiseRuns; i++ {
		if _, err := zipper.RaisePeak(s); err == nil {
			raised++
		}
	}
	return BenchResult{
		Name:     "RaisePeak",
		Duration: time.Since(start),
		Ops:      raiseRuns,
		Extra:    fmt.Sprintf("(%d raised)", raised),
	}
}
