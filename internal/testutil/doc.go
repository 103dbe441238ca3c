// Package testutil provides scripted input channels and capturing output
// fakes shared by the package tests. Not importable from outside the module.
package testutil
