// Package tags provides consistent tagging for Azure resources.
//
// Every resource azprov creates carries a managed-by tag and a deployment
// tag naming the virtual machine the resource belongs to, so all objects
// of one deployment can be found in the portal or with az resource list.
package tags
