package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

var (
	// ErrVirtualMachineNotFound is returned when a VM that must exist does not.
	ErrVirtualMachineNotFound = errors.New("virtual machine not found")

	// ErrInvalidResourceID is returned for identifiers that are not VM resource IDs.
	ErrInvalidResourceID = errors.New("invalid virtual machine resource ID")
)

// IsNotFound checks if an error is an ARM response with status 404.
func IsNotFound(err error) bool {
	return isStatusCode(err, http.StatusNotFound)
}

// IsConflict checks if an error is an ARM response with status 409.
func IsConflict(err error) bool {
	return isStatusCode(err, http.StatusConflict)
}

// IsAuthorizationFailed checks if the principal lacks permission or credentials were rejected.
func IsAuthorizationFailed(err error) bool {
	return isStatusCode(err, http.StatusUnauthorized, http.StatusForbidden)
}

// isStatusCode checks if the error is an ARM response error with one of the given status codes.
func isStatusCode(err error, codes ...int) bool {
	if err == nil {
		return false
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		for _, code := range codes {
			if respErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}
