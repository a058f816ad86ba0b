package optimization

import (
	"gonum.org/v1/gonum/mat"

	"github.com/awheeler/frontier/internal/models"
)

// diagEpsilon is the floor applied to covariance diagonal entries and
// eigenvalues during PSD repair.
const diagEpsilon = 1e-10

// BuildCovariance turns per-asset volatilities and the pairwise correlation
// matrix into a covariance matrix: Sigma[i][j] = risk_i * risk_j * corr(i,j).
// The result is symmetrized, its diagonal is clamped strictly positive, and
// negative eigenvalues are clipped so the matrix is positive semi-definite
// even for inconsistent correlation inputs.
func BuildCovariance(assets []models.AssetClass, corr models.CorrelationMatrix) *mat.SymDense {
	n := len(assets)
	raw := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			raw.Set(i, j, assets[i].Risk*assets[j].Risk*corr.At(assets[i].Name, assets[j].Name))
		}
	}

	// Force symmetry by averaging mirrored entries.
	sigma := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sigma.SetSym(i, j, (raw.At(i, j)+raw.At(j, i))/2)
		}
	}

	for i := 0; i < n; i++ {
		if sigma.At(i, i) <= 0 {
			sigma.SetSym(i, i, diagEpsilon)
		}
	}

	return clipEigenvalues(sigma)
}

// clipEigenvalues floors the eigenvalues of a symmetric matrix at
// diagEpsilon and reconstructs it. Returns the input untouched when no
// eigenvalue needs clipping or the decomposition fails.
func clipEigenvalues(sigma *mat.SymDense) *mat.SymDense {
	var eig mat.EigenSym
	if !eig.Factorize(sigma, true) {
		return sigma
	}

	values := eig.Values(nil)
	clipped := false
	for i, v := range values {
		if v < diagEpsilon {
			values[i] = diagEpsilon
			clipped = true
		}
	}
	if !clipped {
		return sigma
	}

	n := len(values)
	vectors := mat.NewDense(n, n, nil)
	eig.VectorsTo(vectors)

	scaled := mat.NewDense(n, n, nil)
	scaled.Mul(vectors, mat.NewDiagDense(n, values))
	reconstructed := mat.NewDense(n, n, nil)
	reconstructed.Mul(scaled, vectors.T())

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, (reconstructed.At(i, j)+reconstructed.At(j, i))/2)
		}
	}
	return out
}
