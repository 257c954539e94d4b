// SPDX-License-Identifier: MIT

package ops

import "math"

// makeReflector builds the Householder reflector H = I − tau·v·vᵀ that maps
// column k of the n×n row-major buffer d (rows k..n-1) onto beta·e_k.
// v(k) = 1 is implicit; v(k+1:) is stored below the diagonal and beta on it.
// Returns tau; 0 means H = I (column already reduced).
func makeReflector(d []float64, n, k int) float64 {
	alpha := d[k*n+k]
	var ss float64
	for i := k + 1; i < n; i++ {
		x := d[i*n+k]
		ss += x * x
	}
	if ss == 0 {
		return 0
	}

	beta := -math.Copysign(math.Sqrt(alpha*alpha+ss), alpha)
	tau := (beta - alpha) / beta
	scale := 1 / (alpha - beta)
	for i := k + 1; i < n; i++ {
		d[i*n+k] *= scale
	}
	d[k*n+k] = beta

	return tau
}

// applyReflector applies H_k, stored in column k of v (row-major, n columns),
// from the left to columns from..n-1 of the n×n buffer d. w needs len ≥ n.
// v and d may be the same buffer as long as from > k.
func applyReflector(v, d []float64, n, k, from int, tau float64, w []float64) {
	if tau == 0 || from >= n {
		return
	}
	w = w[from:n]
	rk := d[k*n+from : (k+1)*n]
	copy(w, rk)
	for i := k + 1; i < n; i++ {
		vi := v[i*n+k]
		ri := d[i*n+from : (i+1)*n]
		for j, x := range ri {
			w[j] += vi * x
		}
	}
	for j := range w {
		w[j] *= tau
	}
	for j := range rk {
		rk[j] -= w[j]
	}
	for i := k + 1; i < n; i++ {
		vi := v[i*n+k]
		ri := d[i*n+from : (i+1)*n]
		for j := range ri {
			ri[j] -= vi * w[j]
		}
	}
}

// formQ builds the explicit orthogonal factor Q = H_0·H_1···H_{n-1} into q.
func formQ(qr, tau, q, w []float64, n int) {
	clear(q)
	for i := 0; i < n; i++ {
		q[i*n+i] = 1
	}
	for k := n - 1; k >= 0; k-- {
		applyReflector(qr, q, n, k, 0, tau[k], w)
	}
}

// upperOf copies the upper triangle of the n×n buffer src into dst and zeroes
// the rest.
func upperOf(src, dst []float64, n int) {
	clear(dst)
	for i := 0; i < n; i++ {
		copy(dst[i*n+i:(i+1)*n], src[i*n+i:(i+1)*n])
	}
}
