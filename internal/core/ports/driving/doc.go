// Package driving defines the driving ports: the use-case interfaces
// the CLI adapter calls into.
package driving
