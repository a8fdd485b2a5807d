package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrDebtNotFound        = fmt.Errorf("%w debt matching your query", ErrResourceNotFound)
	ErrInstallmentNotFound = fmt.Errorf("%w installment matching your query", ErrResourceNotFound)
)
