package naming

import "fmt"

// Naming functions for the resources of one VM deployment.

func ResourceGroup(vm string) string {
	return fmt.Sprintf("rg-%s", vm)
}

func VirtualNetwork(vm string) string {
	return fmt.Sprintf("vnet-%s", vm)
}

func Subnet(vm string) string {
	return fmt.Sprintf("snet-%s", vm)
}

func PublicIP(vm string) string {
	return fmt.Sprintf("pip-%s", vm)
}

func NetworkInterface(vm string) string {
	return fmt.Sprintf("nic-%s", vm)
}

// SSHKeyFile is the file name of a private key generated for user on vm.
// The public key is written next to it with a .pub suffix.
func SSHKeyFile(vm, user string) string {
	return fmt.Sprintf("%s_%s_rsa", vm, user)
}
