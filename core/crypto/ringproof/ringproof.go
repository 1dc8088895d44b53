// Copyright 2025 The jamcrypto Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ringproof implements the fixed-size polynomial-commitment
// membership argument used by ring VRF signatures.
//
// The argument proves that the blinded key B of a Pedersen VRF proof opens
// to a ring member: B = ring[i] + blind·H for some index i, without revealing
// i. The ring is laid out as two fixed columns Px, Py holding the key
// coordinates over a radix-2 domain (Bandersnatch coordinates live in the
// BLS12-381 scalar field, so rows are commitment-field elements). The rows
// after the ring hold the doublings 2^k·H of the blinding base, and the rest
// of the domain holds a padding point with unknown discrete log.
//
// The prover commits to three witness columns: a bit column b selecting the
// signer's row and carrying the bit decomposition of the blinding scalar, an
// accumulator (ax, ay) walking a twisted Edwards addition of the selected row
// points starting from a fixed seed point, and a counter ip accumulating the
// bits over the ring rows. The constraints, checked over the domain,
//
//	b·(b−1) = 0                                  bits are boolean
//	ip(ωX) = ip + sel·b       (except last row)  ip counts ring-row bits
//	(ax,ay)(ωX) = (ax,ay) ⊕ b·(Px,Py)  (except last row)  conditional addition
//	L₀:    ip = 0,  (ax,ay) = seed
//	L_{n−1}: ip = 1,  (ax,ay) = seed + B
//
// force exactly one ring row to be selected and the accumulator to end at
// seed + B, so B is the selected key plus a multiple of H known to the
// prover in bits. The folded constraint quotient is committed, everything is
// opened at an evaluation challenge ζ (and ω·ζ for the shifted columns), and
// the selector, Py and quotient openings are collapsed into one linearized
// claim so the proof stays at its fixed size. Witness columns are blinded
// with one blinder per opening point, making the openings independent of the
// signer's row. All challenges are derived from the caller's transcript,
// which includes the Pedersen proof, binding the argument to the surrounding
// signature.
package ringproof

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	curve "github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/kzg"

	"github.com/boymaas/jamcrypto/core/crypto/bandersnatch"
)

const (
	digestSize = 48
	frSize     = fr.Bytes

	// scalarBits is the bit width of the blinding-scalar decomposition
	// carried in the bit column after the ring rows.
	scalarBits = 256

	// ProofSize is the fixed serialized proof length: five commitments, a
	// batch opening at ζ (five explicit evaluations; the linearized claim
	// is recomputed by the verifier) and a three-polynomial opening at ω·ζ.
	ProofSize = 5*digestSize + (digestSize + 5*frSize) + (digestSize + 3*frSize)
)

var (
	// ErrProof occurs when a membership proof does not validate.
	ErrProof = errors.New("ringproof: invalid membership proof")
	// ErrWitness occurs when the prover's index or ring does not match the
	// parameters it was asked to prove against.
	ErrWitness = errors.New("ringproof: witness does not match ring")
	// ErrEncoding occurs when a serialized proof is malformed.
	ErrEncoding = errors.New("ringproof: malformed proof encoding")
)

var (
	curveParams = curve.GetEdwardsCurve()
	seedPoint   = bandersnatch.AccumulatorSeed()
	padPoint    = paddingAffine()
	hPowers     = blindingPowers()
	oneElement  = fr.One()
)

func paddingAffine() curve.PointAffine {
	x, y := bandersnatch.PaddingPoint().Coordinates()
	return curve.PointAffine{X: x, Y: y}
}

// blindingPowers returns the doublings 2^k·H of the Pedersen blinding base.
func blindingPowers() [scalarBits]curve.PointAffine {
	var p [scalarBits]curve.PointAffine
	p[0] = bandersnatch.BlindingBase()
	for k := 1; k < scalarBits; k++ {
		p[k].Double(&p[k-1])
	}
	return p
}

// Commitment is the pair of KZG commitments to the ring coordinate columns.
// It is deterministic in the ring's content and order.
type Commitment struct {
	KeysX, KeysY kzg.Digest
}

// Params holds the proving and verifying material for one ring size. The
// selector column depends only on the ring size, so its polynomial and
// commitment are derived here, not carried in ring commitments. Params
// values are immutable and safe for concurrent use.
type Params struct {
	Domain   *fft.Domain
	Pk       kzg.ProvingKey
	Vk       kzg.VerifyingKey
	RingSize int

	selPoly   []fr.Element
	selCommit kzg.Digest
}

func nextPow2(n int) uint64 {
	p := uint64(2)
	for p < uint64(n) {
		p <<= 1
	}
	return p
}

// NewParams derives the material for a ring size from the reference string.
// The domain must fit the ring rows, the blinding-scalar rows and a spare
// last row; the reference string must cover the folded constraint quotient,
// which is where its 5·domain+4 point requirement comes from.
func NewParams(s *kzg.SRS, ringSize int) (*Params, error) {
	if ringSize < 1 {
		return nil, fmt.Errorf("ringproof: ring size %d is not positive", ringSize)
	}
	size := nextPow2(ringSize + scalarBits + 1)
	if need := 5*int(size) + 4; need > len(s.Pk.G1) {
		return nil, fmt.Errorf("ringproof: ring size %d needs %d setup points, reference string has %d", ringSize, need, len(s.Pk.G1))
	}
	p := &Params{
		Domain:   fft.NewDomain(size),
		Pk:       kzg.ProvingKey{G1: s.Pk.G1[:5*size+4]},
		Vk:       s.Vk,
		RingSize: ringSize,
	}

	sel := make([]fr.Element, size)
	for i := 0; i < ringSize; i++ {
		sel[i].SetOne()
	}
	p.selPoly = interpolate(p.Domain, sel)
	var err error
	if p.selCommit, err = kzg.Commit(p.selPoly, p.Pk); err != nil {
		return nil, err
	}
	return p, nil
}

// rowPoints lays the fixed column out as curve points: ring keys, then the
// blinding-base doublings, then padding up to the domain size.
func (p *Params) rowPoints(ring []*bandersnatch.PublicKey) ([]curve.PointAffine, error) {
	if len(ring) != p.RingSize {
		return nil, ErrWitness
	}
	n := int(p.Domain.Cardinality)
	pts := make([]curve.PointAffine, n)
	for i, pk := range ring {
		pts[i].X, pts[i].Y = pk.Coordinates()
	}
	for k := 0; k < scalarBits; k++ {
		pts[len(ring)+k] = hPowers[k]
	}
	for i := len(ring) + scalarBits; i < n; i++ {
		pts[i] = padPoint
	}
	return pts, nil
}

func coordinateColumns(pts []curve.PointAffine) (colX, colY []fr.Element) {
	colX = make([]fr.Element, len(pts))
	colY = make([]fr.Element, len(pts))
	for i := range pts {
		colX[i] = pts[i].X
		colY[i] = pts[i].Y
	}
	return colX, colY
}

// CommitRing commits to the coordinate columns of the ring. Order is
// significant: the prover's index is positional in this exact layout.
func CommitRing(p *Params, ring []*bandersnatch.PublicKey) (Commitment, error) {
	pts, err := p.rowPoints(ring)
	if err != nil {
		return Commitment{}, err
	}
	colX, colY := coordinateColumns(pts)
	var c Commitment
	if c.KeysX, err = kzg.Commit(interpolate(p.Domain, colX), p.Pk); err != nil {
		return Commitment{}, err
	}
	if c.KeysY, err = kzg.Commit(interpolate(p.Domain, colY), p.Pk); err != nil {
		return Commitment{}, err
	}
	return c, nil
}

// Proof is the membership argument. See the package comment for the role of
// each component.
type Proof struct {
	CB, CAx, CAy, CIp kzg.Digest
	CQ                kzg.Digest
	OpenZ             kzg.BatchOpeningProof // Px, b, ax, ay, ip, linearization at ζ
	OpenWZ            kzg.BatchOpeningProof // ax, ay, ip at ω·ζ
}

func challenge(label string, parts ...[]byte) fr.Element {
	var buf bytes.Buffer
	for _, p := range parts {
		buf.Write(p)
	}
	e, err := fr.Hash(buf.Bytes(), []byte(label), 1)
	if err != nil {
		panic(err)
	}
	return e[0]
}

func digestBytes(d *kzg.Digest) []byte {
	b := d.Bytes()
	return b[:]
}

func (p *Params) alphaChallenge(transcript []byte, rc Commitment, proof *Proof) fr.Element {
	return challenge("jamcrypto/ringproof:alpha", transcript,
		digestBytes(&rc.KeysX), digestBytes(&rc.KeysY), digestBytes(&p.selCommit),
		digestBytes(&proof.CB), digestBytes(&proof.CAx), digestBytes(&proof.CAy), digestBytes(&proof.CIp))
}

func (p *Params) zetaChallenge(transcript []byte, rc Commitment, proof *Proof, alpha fr.Element) fr.Element {
	ab := alpha.Bytes()
	return challenge("jamcrypto/ringproof:zeta", transcript,
		digestBytes(&rc.KeysX), digestBytes(&rc.KeysY), digestBytes(&p.selCommit),
		digestBytes(&proof.CB), digestBytes(&proof.CAx), digestBytes(&proof.CAy), digestBytes(&proof.CIp),
		ab[:], digestBytes(&proof.CQ))
}

// openedEvals are the explicit openings of a proof: five polynomials at ζ
// and the three shifted columns at ω·ζ.
type openedEvals struct {
	px, b, ax, ay, ip fr.Element
	axw, ayw, ipw     fr.Element
}

// Prove produces the membership argument for the key at the given ring index
// blinded by the given scalar. The transcript must already bind the Pedersen
// proof whose blinded key B the argument speaks about; completeness requires
// B = ring[index] + blind·H, which holds when the same blind was fed to
// PedersenProve.
func Prove(p *Params, rc Commitment, ring []*bandersnatch.PublicKey, index int, blind *bandersnatch.Scalar, transcript []byte) (*Proof, error) {
	n := int(p.Domain.Cardinality)
	pts, err := p.rowPoints(ring)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(ring) {
		return nil, ErrWitness
	}
	colX, colY := coordinateColumns(pts)

	// Witness columns as domain evaluations. The accumulator walks the
	// conditional additions; its last row lands on seed + key + blind·H,
	// which is exactly seed + B.
	bits := make([]fr.Element, n)
	bits[index].SetOne()
	for k := 0; k < scalarBits; k++ {
		if blind.Bit(k) == 1 {
			bits[len(ring)+k].SetOne()
		}
	}
	axE := make([]fr.Element, n)
	ayE := make([]fr.Element, n)
	ipE := make([]fr.Element, n)
	acc := seedPoint
	var count fr.Element
	for i := 0; i < n; i++ {
		axE[i] = acc.X
		ayE[i] = acc.Y
		ipE[i] = count
		if i == n-1 {
			break
		}
		if bits[i].IsOne() {
			acc.Add(&acc, &pts[i])
			if i < len(ring) {
				count.Add(&count, &oneElement)
			}
		}
	}

	pxPoly := interpolate(p.Domain, colX)
	pyPoly := interpolate(p.Domain, colY)
	bPoly, err := blindPoly(interpolate(p.Domain, bits), n, 1)
	if err != nil {
		return nil, err
	}
	axPoly, err := blindPoly(interpolate(p.Domain, axE), n, 2)
	if err != nil {
		return nil, err
	}
	ayPoly, err := blindPoly(interpolate(p.Domain, ayE), n, 2)
	if err != nil {
		return nil, err
	}
	ipPoly, err := blindPoly(interpolate(p.Domain, ipE), n, 2)
	if err != nil {
		return nil, err
	}

	var proof Proof
	if proof.CB, err = kzg.Commit(bPoly, p.Pk); err != nil {
		return nil, err
	}
	if proof.CAx, err = kzg.Commit(axPoly, p.Pk); err != nil {
		return nil, err
	}
	if proof.CAy, err = kzg.Commit(ayPoly, p.Pk); err != nil {
		return nil, err
	}
	if proof.CIp, err = kzg.Commit(ipPoly, p.Pk); err != nil {
		return nil, err
	}

	alpha := p.alphaChallenge(transcript, rc, &proof)

	t := foldedConstraint(p, alpha, pxPoly, pyPoly, bPoly, axPoly, ayPoly, ipPoly, &acc)
	q, exact := divVanishing(t, n)
	if !exact {
		// The witness walk and the constraint system disagree; nothing a
		// caller can do differently.
		return nil, ErrWitness
	}
	if proof.CQ, err = kzg.Commit(q, p.Pk); err != nil {
		return nil, err
	}

	zeta := p.zetaChallenge(transcript, rc, &proof, alpha)
	var omegaZeta fr.Element
	omegaZeta.Mul(&zeta, &p.Domain.Generator)

	ev := openedEvals{
		px:  polyEval(pxPoly, zeta),
		b:   polyEval(bPoly, zeta),
		ax:  polyEval(axPoly, zeta),
		ay:  polyEval(ayPoly, zeta),
		ip:  polyEval(ipPoly, zeta),
		axw: polyEval(axPoly, omegaZeta),
		ayw: polyEval(ayPoly, omegaZeta),
		ipw: polyEval(ipPoly, omegaZeta),
	}
	_, selCoef, pyCoef := linearParts(p, &ev, alpha, zeta, &acc)
	var zh fr.Element
	zh.Exp(zeta, big.NewInt(int64(n)))
	zh.Sub(&zh, &oneElement)

	// Linearization polynomial: the selector, Py and quotient claims
	// collapsed into a single opening whose value the verifier recomputes.
	var negZh fr.Element
	negZh.Neg(&zh)
	lin := make([]fr.Element, len(p.selPoly))
	copy(lin, p.selPoly)
	scalePoly(lin, selCoef)
	lin = polyAddScaled(lin, pyPoly, pyCoef)
	lin = polyAddScaled(lin, q, negZh)
	linDigest := linearDigest(p, rc, &proof.CQ, selCoef, pyCoef, zh)

	proof.OpenZ, err = kzg.BatchOpenSinglePoint(
		[][]fr.Element{pxPoly, bPoly, axPoly, ayPoly, ipPoly, lin},
		[]kzg.Digest{rc.KeysX, proof.CB, proof.CAx, proof.CAy, proof.CIp, linDigest},
		zeta, sha256.New(), p.Pk)
	if err != nil {
		return nil, err
	}
	proof.OpenWZ, err = kzg.BatchOpenSinglePoint(
		[][]fr.Element{axPoly, ayPoly, ipPoly},
		[]kzg.Digest{proof.CAx, proof.CAy, proof.CIp},
		omegaZeta, sha256.New(), p.Pk)
	if err != nil {
		return nil, err
	}
	return &proof, nil
}

// foldedConstraint builds the α-folded constraint polynomial in coefficient
// form. The constraint order here and in linearParts must match term for
// term; final is the accumulator's last row, seed + B.
func foldedConstraint(p *Params, alpha fr.Element, pxPoly, pyPoly, bPoly, axPoly, ayPoly, ipPoly []fr.Element, final *curve.PointAffine) []fr.Element {
	n := int(p.Domain.Cardinality)
	omega := p.Domain.Generator
	omegaLast := p.Domain.GeneratorInv // ω^{n−1}

	axShift := shiftOmega(axPoly, omega)
	ayShift := shiftOmega(ayPoly, omega)
	ipShift := shiftOmega(ipPoly, omega)

	// notB = 1 − b.
	notB := make([]fr.Element, len(bPoly))
	for i := range bPoly {
		notB[i].Neg(&bPoly[i])
	}
	notB[0].Add(&notB[0], &oneElement)

	// b·(b−1)
	t := polySub(polyMul(bPoly, bPoly), bPoly)
	alphaPow := alpha

	// (X−ω^{n−1})·(ip(ωX) − ip − sel·b)
	ipTrans := polySub(polySub(ipShift, ipPoly), polyMul(p.selPoly, bPoly))
	t = polyAddScaled(t, mulLinear(ipTrans, omegaLast), alphaPow)
	alphaPow.Mul(&alphaPow, &alpha)

	// m = ax·Px·ay·Py, shared by both addition constraints.
	m := polyMul(polyMul(axPoly, pxPoly), polyMul(ayPoly, pyPoly))

	// (X−ω^{n−1})·[ b·( ax'(1+d·m) − (ax·Py + ay·Px) ) + (1−b)·(ax'−ax) ]
	inner := polyAddScaled(clonePoly(axShift), polyMul(axShift, m), curveParams.D)
	inner = polySub(inner, polyMul(axPoly, pyPoly))
	inner = polySub(inner, polyMul(ayPoly, pxPoly))
	condX := polyAddScaled(polyMul(bPoly, inner), polyMul(notB, polySub(axShift, axPoly)), oneElement)
	t = polyAddScaled(t, mulLinear(condX, omegaLast), alphaPow)
	alphaPow.Mul(&alphaPow, &alpha)

	// (X−ω^{n−1})·[ b·( ay'(1−d·m) − (ay·Py − a·ax·Px) ) + (1−b)·(ay'−ay) ]
	var negD fr.Element
	negD.Neg(&curveParams.D)
	inner = polyAddScaled(clonePoly(ayShift), polyMul(ayShift, m), negD)
	inner = polySub(inner, polyMul(ayPoly, pyPoly))
	inner = polyAddScaled(inner, polyMul(axPoly, pxPoly), curveParams.A)
	condY := polyAddScaled(polyMul(bPoly, inner), polyMul(notB, polySub(ayShift, ayPoly)), oneElement)
	t = polyAddScaled(t, mulLinear(condY, omegaLast), alphaPow)
	alphaPow.Mul(&alphaPow, &alpha)

	// L₀ has every coefficient 1/n; L_{n−1} has coefficient i equal ω^i/n.
	lagrange0 := make([]fr.Element, n)
	for i := range lagrange0 {
		lagrange0[i] = p.Domain.CardinalityInv
	}
	lagrangeLast := shiftOmega(lagrange0, omega)

	boundary := func(lagrange, poly []fr.Element, value *fr.Element) {
		at := clonePoly(poly)
		at[0].Sub(&at[0], value)
		t = polyAddScaled(t, polyMul(lagrange, at), alphaPow)
		alphaPow.Mul(&alphaPow, &alpha)
	}
	var zero fr.Element
	boundary(lagrange0, ipPoly, &zero)           // ip starts at 0
	boundary(lagrangeLast, ipPoly, &oneElement)  // exactly one ring row selected
	boundary(lagrange0, axPoly, &seedPoint.X)    // accumulator starts at the seed
	boundary(lagrange0, ayPoly, &seedPoint.Y)
	boundary(lagrangeLast, axPoly, &final.X) // and ends at seed + B
	boundary(lagrangeLast, ayPoly, &final.Y)
	return t
}

// linearParts evaluates the folded constraint at ζ, split into the scalar
// part and the coefficients of the two linearized polynomials:
//
//	F(ζ) = scalar + selCoef·sel(ζ) + pyCoef·Py(ζ)
//
// final is the accumulator's required last row, seed + B.
func linearParts(p *Params, ev *openedEvals, alpha, zeta fr.Element, final *curve.PointAffine) (scalar, selCoef, pyCoef fr.Element) {
	n := int64(p.Domain.Cardinality)

	var zh, l0, lLast, den, shift fr.Element
	zh.Exp(zeta, big.NewInt(n))
	zh.Sub(&zh, &oneElement)
	// L₀(ζ) = (ζ^n−1)/(n(ζ−1)), L_{n−1}(ζ) = (ζ^n−1)/(n(ωζ−1)).
	den.Sub(&zeta, &oneElement)
	den.Inverse(&den)
	l0.Mul(&zh, &p.Domain.CardinalityInv)
	lLast.Set(&l0)
	l0.Mul(&l0, &den)
	den.Mul(&zeta, &p.Domain.Generator)
	den.Sub(&den, &oneElement)
	den.Inverse(&den)
	lLast.Mul(&lLast, &den)
	shift.Sub(&zeta, &p.Domain.GeneratorInv) // ζ − ω^{n−1}

	var notB fr.Element
	notB.Sub(&oneElement, &ev.b)

	// b·(b−1)
	var term, tmp fr.Element
	scalar.Square(&ev.b)
	scalar.Sub(&scalar, &ev.b)
	alphaPow := alpha

	// shift·(ipw − ip − sel·b): sel is linearized.
	term.Sub(&ev.ipw, &ev.ip)
	term.Mul(&term, &shift)
	term.Mul(&term, &alphaPow)
	scalar.Add(&scalar, &term)
	selCoef.Mul(&shift, &ev.b)
	selCoef.Neg(&selCoef)
	selCoef.Mul(&selCoef, &alphaPow)
	alphaPow.Mul(&alphaPow, &alpha)

	// Conditional-addition x: everything except the Py factors is scalar.
	// mNoPy = d·ax·Px·ay, the quartic product short one linearized factor.
	var mNoPy fr.Element
	mNoPy.Mul(&ev.ax, &ev.px)
	mNoPy.Mul(&mNoPy, &ev.ay)
	mNoPy.Mul(&mNoPy, &curveParams.D)

	// scalar: shift·( b·(axw − ay·Px) + (1−b)(axw−ax) )
	term.Mul(&ev.ay, &ev.px)
	term.Sub(&ev.axw, &term)
	term.Mul(&term, &ev.b)
	tmp.Sub(&ev.axw, &ev.ax)
	tmp.Mul(&tmp, &notB)
	term.Add(&term, &tmp)
	term.Mul(&term, &shift)
	term.Mul(&term, &alphaPow)
	scalar.Add(&scalar, &term)
	// Py: shift·b·( axw·mNoPy − ax )
	term.Mul(&ev.axw, &mNoPy)
	term.Sub(&term, &ev.ax)
	term.Mul(&term, &ev.b)
	term.Mul(&term, &shift)
	term.Mul(&term, &alphaPow)
	pyCoef.Add(&pyCoef, &term)
	alphaPow.Mul(&alphaPow, &alpha)

	// Conditional-addition y.
	// scalar: shift·( b·(ayw + a·ax·Px) + (1−b)(ayw−ay) )
	term.Mul(&ev.ax, &ev.px)
	term.Mul(&term, &curveParams.A)
	term.Add(&term, &ev.ayw)
	term.Mul(&term, &ev.b)
	tmp.Sub(&ev.ayw, &ev.ay)
	tmp.Mul(&tmp, &notB)
	term.Add(&term, &tmp)
	term.Mul(&term, &shift)
	term.Mul(&term, &alphaPow)
	scalar.Add(&scalar, &term)
	// Py: −shift·b·( ayw·mNoPy + ay )
	term.Mul(&ev.ayw, &mNoPy)
	term.Add(&term, &ev.ay)
	term.Mul(&term, &ev.b)
	term.Mul(&term, &shift)
	term.Mul(&term, &alphaPow)
	pyCoef.Sub(&pyCoef, &term)
	alphaPow.Mul(&alphaPow, &alpha)

	boundary := func(lagrange *fr.Element, opened, value fr.Element) {
		var c fr.Element
		c.Sub(&opened, &value)
		c.Mul(&c, lagrange)
		c.Mul(&c, &alphaPow)
		scalar.Add(&scalar, &c)
		alphaPow.Mul(&alphaPow, &alpha)
	}
	var zero fr.Element
	boundary(&l0, ev.ip, zero)
	boundary(&lLast, ev.ip, oneElement)
	boundary(&l0, ev.ax, seedPoint.X)
	boundary(&l0, ev.ay, seedPoint.Y)
	boundary(&lLast, ev.ax, final.X)
	boundary(&lLast, ev.ay, final.Y)
	return scalar, selCoef, pyCoef
}

// linearDigest folds the selector, KeysY and quotient commitments with the
// linearization coefficients: it commits to the polynomial
// selCoef·sel + pyCoef·Py − Z_H(ζ)·Q.
func linearDigest(p *Params, rc Commitment, cq *kzg.Digest, selCoef, pyCoef, zh fr.Element) kzg.Digest {
	var negZh fr.Element
	negZh.Neg(&zh)
	var s big.Int
	var acc, t bls12381.G1Jac
	acc.ScalarMultiplicationAffine(&p.selCommit, selCoef.BigInt(&s))
	t.ScalarMultiplicationAffine(&rc.KeysY, pyCoef.BigInt(&s))
	acc.AddAssign(&t)
	t.ScalarMultiplicationAffine(cq, negZh.BigInt(&s))
	acc.AddAssign(&t)
	var d kzg.Digest
	d.FromJacobian(&acc)
	return d
}

// Verify checks the membership argument against the ring commitment, the
// Pedersen blinded key B and the caller's transcript. blinded must be the B
// point of the Pedersen proof bound into the same transcript.
func Verify(p *Params, rc Commitment, blinded curve.PointAffine, proof *Proof, transcript []byte) error {
	if len(proof.OpenZ.ClaimedValues) < 5 || len(proof.OpenWZ.ClaimedValues) != 3 {
		return ErrProof
	}
	alpha := p.alphaChallenge(transcript, rc, proof)
	zeta := p.zetaChallenge(transcript, rc, proof, alpha)
	var omegaZeta fr.Element
	omegaZeta.Mul(&zeta, &p.Domain.Generator)

	ev := openedEvals{
		px:  proof.OpenZ.ClaimedValues[0],
		b:   proof.OpenZ.ClaimedValues[1],
		ax:  proof.OpenZ.ClaimedValues[2],
		ay:  proof.OpenZ.ClaimedValues[3],
		ip:  proof.OpenZ.ClaimedValues[4],
		axw: proof.OpenWZ.ClaimedValues[0],
		ayw: proof.OpenWZ.ClaimedValues[1],
		ipw: proof.OpenWZ.ClaimedValues[2],
	}

	var zh fr.Element
	zh.Exp(zeta, big.NewInt(int64(p.Domain.Cardinality)))
	zh.Sub(&zh, &oneElement)
	if zh.IsZero() {
		// ζ landed inside the evaluation domain.
		return ErrProof
	}

	var final curve.PointAffine
	final.Add(&seedPoint, &blinded)

	scalar, selCoef, pyCoef := linearParts(p, &ev, alpha, zeta, &final)
	linDigest := linearDigest(p, rc, &proof.CQ, selCoef, pyCoef, zh)

	// The linearized opening must carry −scalar: that is exactly the
	// statement F(ζ) = Z_H(ζ)·Q(ζ) for the folded constraint F.
	var linValue fr.Element
	linValue.Neg(&scalar)
	claimed := make([]fr.Element, 6)
	copy(claimed, proof.OpenZ.ClaimedValues[:5])
	claimed[5] = linValue
	openZ := kzg.BatchOpeningProof{H: proof.OpenZ.H, ClaimedValues: claimed}

	digests := []kzg.Digest{rc.KeysX, proof.CB, proof.CAx, proof.CAy, proof.CIp, linDigest}
	if err := kzg.BatchVerifySinglePoint(digests, &openZ, zeta, sha256.New(), p.Vk); err != nil {
		return ErrProof
	}
	shifted := []kzg.Digest{proof.CAx, proof.CAy, proof.CIp}
	if err := kzg.BatchVerifySinglePoint(shifted, &proof.OpenWZ, omegaZeta, sha256.New(), p.Vk); err != nil {
		return ErrProof
	}
	return nil
}

// Bytes returns the canonical fixed-length proof encoding. The linearized
// claim of the ζ opening is not serialized; verifiers recompute it.
func (p *Proof) Bytes() [ProofSize]byte {
	var out [ProofSize]byte
	o := 0
	for _, d := range []*kzg.Digest{&p.CB, &p.CAx, &p.CAy, &p.CIp, &p.CQ, &p.OpenZ.H} {
		copy(out[o:], digestBytes(d))
		o += digestSize
	}
	for i := 0; i < 5; i++ {
		b := p.OpenZ.ClaimedValues[i].Bytes()
		copy(out[o:], b[:])
		o += frSize
	}
	copy(out[o:], digestBytes(&p.OpenWZ.H))
	o += digestSize
	for i := 0; i < 3; i++ {
		b := p.OpenWZ.ClaimedValues[i].Bytes()
		copy(out[o:], b[:])
		o += frSize
	}
	return out
}

// ParseProof parses a canonical proof encoding, rejecting wrong lengths,
// invalid curve points and non-canonical field elements.
func ParseProof(b []byte) (*Proof, error) {
	if len(b) != ProofSize {
		return nil, ErrEncoding
	}
	var p Proof
	o := 0
	for _, d := range []*kzg.Digest{&p.CB, &p.CAx, &p.CAy, &p.CIp, &p.CQ, &p.OpenZ.H} {
		if _, err := d.SetBytes(b[o : o+digestSize]); err != nil {
			return nil, ErrEncoding
		}
		o += digestSize
	}
	p.OpenZ.ClaimedValues = make([]fr.Element, 5)
	for i := range p.OpenZ.ClaimedValues {
		if err := p.OpenZ.ClaimedValues[i].SetBytesCanonical(b[o : o+frSize]); err != nil {
			return nil, ErrEncoding
		}
		o += frSize
	}
	if _, err := p.OpenWZ.H.SetBytes(b[o : o+digestSize]); err != nil {
		return nil, ErrEncoding
	}
	o += digestSize
	p.OpenWZ.ClaimedValues = make([]fr.Element, 3)
	for i := range p.OpenWZ.ClaimedValues {
		if err := p.OpenWZ.ClaimedValues[i].SetBytesCanonical(b[o : o+frSize]); err != nil {
			return nil, ErrEncoding
		}
		o += frSize
	}
	return &p, nil
}
