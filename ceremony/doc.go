// Package ceremony is the two-phase ceremony engine: Update drives a
// single contributor's round (sample witness, produce Rho proof(s),
// mutate the SRS, append to the transcript); Verify and VerifyNaive
// combine the SRS's own shape checks, the batch transcript's checks,
// and the pairing equations tying the universal and circuit-specific
// SRS components to the QAP into a single SUCCESS/FAILURE verdict.
package ceremony
