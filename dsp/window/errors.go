package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window: empty coefficients")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
	errMismatchedLength = errors.New("window: samples and coefficients differ in length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be positive, got %d", size)
	}
	return nil
}

func validateKaiser(size int, beta float64) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if beta < 0 {
		return fmt.Errorf("kaiser beta must not be negative, got %g", beta)
	}
	return nil
}

func validateTukey(size int, alpha float64) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("tukey alpha must be in [0, 1], got %g", alpha)
	}
	return nil
}

func validateGauss(size int, alpha float64) error {
	if err := validateLength(size); err != nil {
		return err
	}
	if alpha <= 0 {
		return fmt.Errorf("gauss alpha must be positive, got %g", alpha)
	}
	return nil
}
