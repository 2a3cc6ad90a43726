// Package keygen generates RSA key pairs for SSH authentication.
//
// Keys are produced in PEM format (private) and OpenSSH authorized_keys
// format (public), suitable for a Linux VM's admin user on Azure.
package keygen
