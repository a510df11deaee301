package testing

import (
	"context"
	"fmt"
	"strings"
)

// CallLog records external-tool invocations across fakes in order.
type CallLog struct {
	calls []string
}

// NewCallLog creates an empty call log.
func NewCallLog() *CallLog {
	return &CallLog{}
}

// Record appends a call description to the log.
func (l *CallLog) Record(format string, v ...interface{}) {
	l.calls = append(l.calls, fmt.Sprintf(format, v...))
}

// Calls returns the recorded calls in invocation order.
func (l *CallLog) Calls() []string {
	return l.calls
}

// FakeConda is a recording fake for the conda.Client interface.
type FakeConda struct {
	Log *CallLog

	// Envs tracks existing environments; CreateEnv and RemoveEnv keep it
	// current so EnvExists reflects prior fake operations.
	Envs map[string]bool

	CreateErr  error
	InstallErr error
	RunErr     error
	RemoveErr  error
	ExistsErr  error
}

// NewFakeConda creates a FakeConda recording into log.
func NewFakeConda(log *CallLog) *FakeConda {
	return &FakeConda{Log: log, Envs: make(map[string]bool)}
}

func (f *FakeConda) CreateEnv(_ context.Context, name, pythonVersion string) error {
	f.Log.Record("CreateEnv(%s, %s)", name, pythonVersion)
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.Envs[name] = true
	return nil
}

func (f *FakeConda) InstallPackages(_ context.Context, name, channel string, packages []string) error {
	f.Log.Record("InstallPackages(%s, %s, [%s])", name, channel, strings.Join(packages, " "))
	return f.InstallErr
}

func (f *FakeConda) RunIn(_ context.Context, name string, args ...string) error {
	f.Log.Record("RunIn(%s, %s)", name, strings.Join(args, " "))
	return f.RunErr
}

func (f *FakeConda) RemoveEnv(_ context.Context, name string) error {
	f.Log.Record("RemoveEnv(%s)", name)
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	delete(f.Envs, name)
	return nil
}

func (f *FakeConda) EnvExists(_ context.Context, name string) (bool, error) {
	f.Log.Record("EnvExists(%s)", name)
	if f.ExistsErr != nil {
		return false, f.ExistsErr
	}
	return f.Envs[name], nil
}

// FakeGit is a recording fake for the git.Client interface.
type FakeGit struct {
	Log      *CallLog
	CloneErr error
}

// NewFakeGit creates a FakeGit recording into log.
func NewFakeGit(log *CallLog) *FakeGit {
	return &FakeGit{Log: log}
}

func (f *FakeGit) Clone(_ context.Context, url, dir string) error {
	f.Log.Record("Clone(%s, %s)", url, dir)
	return f.CloneErr
}

// FakeJupyter is a recording fake for the jupyter.Client interface.
type FakeJupyter struct {
	Log *CallLog

	// Kernels tracks registered kernelspecs; RemoveKernel keeps it current.
	Kernels map[string]bool

	ExistsErr error
	RemoveErr error
}

// NewFakeJupyter creates a FakeJupyter recording into log.
func NewFakeJupyter(log *CallLog) *FakeJupyter {
	return &FakeJupyter{Log: log, Kernels: make(map[string]bool)}
}

func (f *FakeJupyter) KernelExists(_ context.Context, name string) (bool, error) {
	f.Log.Record("KernelExists(%s)", name)
	if f.ExistsErr != nil {
		return false, f.ExistsErr
	}
	return f.Kernels[strings.ToLower(name)], nil
}

func (f *FakeJupyter) RemoveKernel(_ context.Context, name string) error {
	f.Log.Record("RemoveKernel(%s)", name)
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	delete(f.Kernels, strings.ToLower(name))
	return nil
}
