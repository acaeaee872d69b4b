// Package secret resolves job passwords, optionally reading them from
// encrypted viant/scy secrets instead of the command line.
package secret
