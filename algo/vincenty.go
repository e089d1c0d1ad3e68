package algo

import (
	"math"

	"airport-distance/model"
	"airport-distance/utils"
)

const (
	vincentyMaxIterations        = 200
	vincentyConvergenceThreshold = 1e-12
)

// VincentyCalculator Vincenty 反解公式 (椭球面上的迭代解法)
type VincentyCalculator struct {
	radiusKm        float64 // 长半轴 a
	semiMinorAxisKm float64 // 短半轴 b
	flattening      float64 // 扁率 f
}

func NewVincentyCalculator(radiusKm, semiMinorAxisKm, flattening float64) *VincentyCalculator {
	return &VincentyCalculator{
		radiusKm:        radiusKm,
		semiMinorAxisKm: semiMinorAxisKm,
		flattening:      flattening,
	}
}

// CalculateDistance 计算两点间椭球面测地线距离 (公里)
// 接近对跖点时迭代可能不收敛，此时返回 *ConvergenceError，不给出近似值
func (c *VincentyCalculator) CalculateDistance(from, to model.Coordinates) (float64, error) {
	f := c.flattening

	// 归化纬度
	u1 := math.Atan((1 - f) * math.Tan(utils.DegreesToRadians(from.Latitude)))
	u2 := math.Atan((1 - f) * math.Tan(utils.DegreesToRadians(to.Latitude)))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	l := utils.DegreesToRadians(to.Longitude - from.Longitude)
	lambda := l

	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64
	converged := false

	for i := 0; i < vincentyMaxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)

		sinSigma = math.Sqrt(math.Pow(cosU2*sinLambda, 2) +
			math.Pow(cosU1*sinU2-sinU1*cosU2*cosLambda, 2))

		// 两点重合，必须在计算 sinAlpha 之前判断，否则会除以 0
		if sinSigma == 0 {
			return 0, nil
		}

		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha

		cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		// 两点都在赤道上时 cosSqAlpha = 0
		if math.IsNaN(cos2SigmaM) {
			cos2SigmaM = 0
		}

		cc := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))

		previousLambda := lambda
		lambda = l + (1-cc)*f*sinAlpha*
			(sigma+cc*sinSigma*(cos2SigmaM+cc*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-previousLambda) < vincentyConvergenceThreshold {
			converged = true
			break
		}
	}

	if !converged {
		return 0, &ConvergenceError{Iterations: vincentyMaxIterations}
	}

	a2 := c.radiusKm * c.radiusKm
	b2 := c.semiMinorAxisKm * c.semiMinorAxisKm
	uSq := cosSqAlpha * (a2 - b2) / b2

	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := bigB * sinSigma *
		(cos2SigmaM + bigB/4*
			(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
				bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return c.semiMinorAxisKm * bigA * (sigma - deltaSigma), nil
}
