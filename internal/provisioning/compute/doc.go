// Package compute provisions the Linux virtual machine on its network interface.
//
// The admin user authenticates with ADMIN_PASSWORD when it is set. Otherwise
// the VM gets an SSH public key: the one at vm.ssh_public_key_path, or a
// freshly generated RSA pair whose private key is written next to the config.
package compute
