package compute

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/provisioning"
	"github.com/imamik/azprov/internal/util/keygen"
	"github.com/imamik/azprov/internal/util/naming"
)

const phase = "compute"

// Provisioner handles virtual machine provisioning.
type Provisioner struct {
	// KeyDir is where generated SSH keys are written.
	KeyDir string
}

// NewProvisioner creates a new compute provisioner that writes generated keys to keyDir.
func NewProvisioner(keyDir string) *Provisioner {
	return &Provisioner{KeyDir: keyDir}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	return p.ProvisionVirtualMachine(ctx)
}

// ProvisionVirtualMachine ensures the VM attached to the NIC from state.
// Credentials are only prepared when the VM actually has to be created.
func (p *Provisioner) ProvisionVirtualMachine(ctx *provisioning.Context) error {
	cfg := ctx.Config
	state := ctx.State

	if err := provisioning.RequireID(ctx, azure.KindVirtualMachine, cfg.VMName, azure.KindNetworkInterface, state.NetworkInterfaceID); err != nil {
		return err
	}

	id, err := provisioning.EnsureExists(ctx, phase, provisioning.ResourceFuncs{
		ResourceKind: azure.KindVirtualMachine,
		ResourceName: cfg.VMName,
		LookupFunc: func(c context.Context) (string, bool, error) {
			return ctx.Infra.GetVirtualMachine(c, cfg.ResourceGroupName, cfg.VMName)
		},
		CreateFunc: func(c context.Context) (string, error) {
			spec := azure.VirtualMachineSpec{
				ResourceGroup: cfg.ResourceGroupName,
				Name:          cfg.VMName,
				Location:      cfg.Location,
				Size:          cfg.VM.Size,
				Image: azure.ImageReference{
					Publisher: cfg.VM.Image.Publisher,
					Offer:     cfg.VM.Image.Offer,
					SKU:       cfg.VM.Image.SKU,
					Version:   cfg.VM.Image.Version,
				},
				AdminUsername:      ctx.Secrets.AdminUsername,
				NetworkInterfaceID: state.NetworkInterfaceID,
				Tags:               cfg.ResourceTags(),
			}
			if err := p.prepareCredentials(ctx, &spec); err != nil {
				return "", err
			}
			return ctx.Infra.CreateVirtualMachine(c, spec)
		},
	})
	if err != nil {
		return err
	}

	state.VirtualMachineID = id
	return nil
}

// prepareCredentials sets the password or SSH public key on spec.
func (p *Provisioner) prepareCredentials(ctx *provisioning.Context, spec *azure.VirtualMachineSpec) error {
	if ctx.Secrets.UsesPasswordAuth() {
		spec.AdminPassword = ctx.Secrets.AdminPassword
		return nil
	}

	if path := ctx.Config.VM.SSHPublicKeyPath; path != "" {
		key, err := keygen.ReadPublicKey(path)
		if err != nil {
			return err
		}
		spec.SSHPublicKey = key
		ctx.Observer.Printf("[%s] Using SSH public key %s for %s", phase, path, spec.AdminUsername)
		return nil
	}

	privatePath := filepath.Join(p.KeyDir, naming.SSHKeyFile(ctx.Config.VMName, spec.AdminUsername))
	if keygen.PairExists(privatePath) {
		key, err := keygen.ReadPublicKey(privatePath + ".pub")
		if err != nil {
			return err
		}
		spec.SSHPublicKey = key
		ctx.State.SSHPrivateKeyPath = privatePath
		ctx.Observer.Printf("[%s] Reusing SSH key pair %s for %s", phase, privatePath, spec.AdminUsername)
		return nil
	}

	keyPair, err := keygen.GenerateRSAKeyPair(keygen.DefaultBits)
	if err != nil {
		return err
	}
	if _, err := keyPair.WriteFiles(privatePath); err != nil {
		return fmt.Errorf("failed to save generated SSH key: %w", err)
	}

	spec.SSHPublicKey = keyPair.AuthorizedKey()
	ctx.State.SSHPrivateKeyPath = privatePath
	ctx.Observer.Printf("[%s] Generated SSH key pair for %s, private key written to %s", phase, spec.AdminUsername, privatePath)
	return nil
}
