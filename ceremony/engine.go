package ceremony

import (
	"io"

	"github.com/anupsv/snarky-ceremonies/backend"
	"github.com/anupsv/snarky-ceremonies/batch"
	"github.com/anupsv/snarky-ceremonies/internal/common"
	"github.com/anupsv/snarky-ceremonies/qap"
	"github.com/anupsv/snarky-ceremonies/rho"
	"github.com/anupsv/snarky-ceremonies/srs"
)

// Update drives one contributor's round for the given phase: it
// samples a fresh witness, produces the accompanying Rho proof(s)
// against the pre-update SRS, mutates the SRS in place, and appends
// the proof(s) to the transcript.
//
// The protocol does not forbid a phase-1 update after a phase-2
// update at this layer; verification assumes one full phase 1
// followed by one full phase 2. Callers that need that ordering
// enforced should track phase transitions themselves. Update stays a
// pure per-round primitive rather than embedding an ordering policy.
func Update(bk backend.Backend, q *qap.QAP, s *srs.SRS, bp *batch.BatchProof, phase batch.Phase, reader io.Reader) error {
	log := common.Logger()

	switch phase {
	case batch.Phase1:
		a, err := bk.RandomScalar(reader)
		if err != nil {
			return err
		}
		b, err := bk.RandomScalar(reader)
		if err != nil {
			return err
		}
		x, err := bk.RandomScalar(reader)
		if err != nil {
			return err
		}

		pAG := rho.Create(bk, s.U.U1[0].AG, a)
		pBG := rho.Create(bk, s.U.U1[0].BG, b)
		pU1 := rho.Create(bk, s.U.U0[1].G1, x)

		s.UpdatePhase1(bk, q, srs.Phase1Witness{A: a, B: b, X: x})
		bp.AppendPhase1(batch.Phase1Triple{pAG, pBG, pU1})

		log.Debug().Int("batch_len", len(bp.Phase1)).Msg("phase-1 update applied")
		return nil

	case batch.Phase2:
		d, err := bk.RandomScalar(reader)
		if err != nil {
			return err
		}

		p := rho.Create(bk, s.S.S0, d)
		s.UpdatePhase2(bk, srs.Phase2Witness{D: d})
		bp.AppendPhase2(p)

		log.Debug().Int("batch_len", len(bp.Phase2)).Msg("phase-2 update applied")
		return nil

	default:
		return errUnknownPhase
	}
}
