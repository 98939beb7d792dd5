package v1alpha1

import "errors"

// ErrClusterNameTooLong is returned when the cluster name exceeds the maximum length.
var ErrClusterNameTooLong = errors.New("cluster name is too long")

// ErrClusterNameInvalid is returned when the cluster name is not DNS-1123 compliant.
var ErrClusterNameInvalid = errors.New("cluster name is invalid")

// ErrInvalidIP is returned when a value is not an IPv4 address.
var ErrInvalidIP = errors.New("invalid IPv4 address")
