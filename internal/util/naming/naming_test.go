package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaming(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"resource group", ResourceGroup("web01"), "rg-web01"},
		{"virtual network", VirtualNetwork("web01"), "vnet-web01"},
		{"subnet", Subnet("web01"), "snet-web01"},
		{"public ip", PublicIP("web01"), "pip-web01"},
		{"network interface", NetworkInterface("web01"), "nic-web01"},
		{"ssh key", SSHKeyFile("web01", "azureuser"), "web01_azureuser_rsa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
