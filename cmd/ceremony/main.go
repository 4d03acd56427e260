// Command ceremony runs an end-to-end two-phase SRS ceremony for a
// default QAP of the given shape and reports whether the resulting
// transcript verifies.
package main

import (
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/anupsv/snarky-ceremonies/backend"
	"github.com/anupsv/snarky-ceremonies/batch"
	"github.com/anupsv/snarky-ceremonies/ceremony"
	"github.com/anupsv/snarky-ceremonies/internal/common"
	"github.com/anupsv/snarky-ceremonies/qap"
	"github.com/anupsv/snarky-ceremonies/srs"
)

func main() {
	naive := flag.Bool("naive", false, "use the naive (one-equation-per-index) verifier instead of the batched one")
	flag.Parse()

	args := flag.Args()
	if len(args) != 5 {
		fmt.Fprintln(os.Stderr, "usage: ceremony [-naive] m n l nr_phase1 nr_phase2")
		os.Exit(1)
	}

	m, n, l, nrPhase1, nrPhase2, err := parsePositional(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(m, n, l, nrPhase1, nrPhase2, *naive))
}

func parsePositional(args []string) (m, n, l, nrPhase1, nrPhase2 int, err error) {
	vals := make([]int, 5)
	for i, a := range args {
		v, convErr := strconv.Atoi(a)
		if convErr != nil {
			return 0, 0, 0, 0, 0, fmt.Errorf("argument %q is not an integer: %w", a, convErr)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], vals[4], nil
}

func run(m, n, l, nrPhase1, nrPhase2 int, naive bool) int {
	log := common.Logger()

	q, err := qap.CreateDefault(m, n, l)
	if err != nil {
		var shapeErr *qap.ShapeError
		if errors.As(err, &shapeErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", shapeErr)
			return shapeErr.Code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	bk := backend.New()
	s, err := srs.Setup(bk, q, rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set up SRS: %v\n", err)
		return 1
	}

	bp := batch.New()
	for i := 0; i < nrPhase1; i++ {
		if err := ceremony.Update(bk, q, s, bp, batch.Phase1, rand.Reader); err != nil {
			fmt.Fprintf(os.Stderr, "Error: phase-1 update %d failed: %v\n", i, err)
			return 1
		}
	}
	for i := 0; i < nrPhase2; i++ {
		if err := ceremony.Update(bk, q, s, bp, batch.Phase2, rand.Reader); err != nil {
			fmt.Fprintf(os.Stderr, "Error: phase-2 update %d failed: %v\n", i, err)
			return 1
		}
	}

	var verdict ceremony.Verification
	if naive {
		verdict = ceremony.VerifyNaive(bk, q, s, bp)
	} else {
		verdict = ceremony.Verify(bk, q, s, bp)
	}

	log.Info().
		Int("m", m).Int("n", n).Int("l", l).
		Int("nr_phase1", nrPhase1).Int("nr_phase2", nrPhase2).
		Str("verdict", verdict.String()).
		Msg("ceremony run complete")

	fmt.Println(verdict)
	if !verdict.Bool() {
		return 1
	}
	return 0
}
