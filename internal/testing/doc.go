// Package testing provides shared fakes for the external tool clients.
//
// All fakes record their invocations into a single ordered CallLog, so
// tests can assert the exact order in which the pipelines drive the
// external tools:
//
//	log := testing.NewCallLog()
//	condaFake := testing.NewFakeConda(log)
//	gitFake := testing.NewFakeGit(log)
//	...
//	assert.Equal(t, []string{"CreateEnv(test_env, 3.7)", ...}, log.Calls())
package testing
