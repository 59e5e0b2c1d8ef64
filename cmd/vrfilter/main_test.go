package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vrfilter/internal/deathrecord"
	"vrfilter/internal/message"
)

type fixture struct {
	dir   string
	allow string
	table string
}

func newFixture(t *testing.T, allow string) fixture {
	t.Helper()

	t.Setenv("VRFILTER_ALLOW_LIST", "")
	t.Setenv("VRFILTER_MAPPING", "")

	dir := t.TempDir()
	f := fixture{
		dir:   dir,
		allow: filepath.Join(dir, "allow.json"),
		table: filepath.Join(dir, "mapping.yaml"),
	}

	require.NoError(t, os.WriteFile(f.allow, []byte(allow), 0o600))
	require.NoError(t, os.WriteFile(f.table, []byte(`
"19": NOTFOUND
"60": Race.White
DOB_YR: DateOfBirth
COD: CausesOfDeath[]
BAD: Race.Missing
`), 0o600))

	return f
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func sampleEnvelope(t *testing.T, kind message.Kind) string {
	t.Helper()

	env := message.Envelope[deathrecord.DeathRecord]{
		Kind:   kind,
		ID:     "m-1",
		Source: "MA",
		Record: deathrecord.Sample(),
	}

	data, err := json.Marshal(env)
	require.NoError(t, err)

	return string(data)
}

func TestFilterCommand(t *testing.T) {
	f := newFixture(t, `["DOB_YR","60","19"]`)

	stdout, _, err := run(t, sampleEnvelope(t, message.KindSubmission),
		"filter", "--allow-list", f.allow, "--mapping", f.table)
	require.NoError(t, err)

	var out message.Envelope[deathrecord.DeathRecord]
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))

	assert.Equal(t, "m-1", out.ID)
	assert.Equal(t, &deathrecord.DeathRecord{
		DateOfBirth: "1970-04-24",
		Race:        map[string]string{"White": "Y"},
	}, out.Record)
}

func TestFilterCommandFiles(t *testing.T) {
	f := newFixture(t, `["COD"]`)
	in := filepath.Join(f.dir, "in.json")
	out := filepath.Join(f.dir, "out.json")
	require.NoError(t, os.WriteFile(in, []byte(sampleEnvelope(t, message.KindUpdate)), 0o600))

	_, _, err := run(t, "", "filter", "-a", f.allow, "-m", f.table, "--in", in, "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var env message.Envelope[deathrecord.DeathRecord]
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, message.KindUpdate, env.Kind)
	assert.Equal(t, &deathrecord.DeathRecord{CausesOfDeath: deathrecord.Sample().CausesOfDeath}, env.Record)
}

func TestFilterCommandStrict(t *testing.T) {
	f := newFixture(t, `["BAD"]`)

	stdout, stderr, err := run(t, sampleEnvelope(t, message.KindSubmission),
		"filter", "-a", f.allow, "-m", f.table, "--strict")
	require.Error(t, err)
	assert.NotEmpty(t, stdout)
	assert.Contains(t, stderr, "subkey_not_found")

	_, _, err = run(t, sampleEnvelope(t, message.KindSubmission), "filter", "-a", f.allow, "-m", f.table)
	require.NoError(t, err)
}

func TestFilterCommandPassThrough(t *testing.T) {
	f := newFixture(t, `["DOB_YR"]`)
	in := `{"kind":"void","id":"v-1","payload":{"certificateNumber":"182"}}`

	stdout, _, err := run(t, in, "filter", "-a", f.allow, "-m", f.table)
	require.NoError(t, err)
	assert.JSONEq(t, in, stdout)
}

func TestFilterCommandErrors(t *testing.T) {
	f := newFixture(t, `{"not":"a list"}`)

	_, _, err := run(t, sampleEnvelope(t, message.KindSubmission), "filter", "-a", f.allow, "-m", f.table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allow-list")

	_, _, err = run(t, "{}", "filter", "-m", f.table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VRFILTER_ALLOW_LIST")

	good := newFixture(t, `["DOB_YR"]`)
	_, _, err = run(t, `{"kind":"submission","id":"x"}`, "filter", "-a", good.allow, "-m", good.table)
	require.ErrorIs(t, err, message.ErrMissingRecord)

	_, _, err = run(t, `not json`, "filter", "-a", good.allow, "-m", good.table)
	require.Error(t, err)
}

func TestFilterCommandUsesEnv(t *testing.T) {
	f := newFixture(t, `["DOB_YR"]`)
	t.Setenv("VRFILTER_ALLOW_LIST", f.allow)
	t.Setenv("VRFILTER_MAPPING", f.table)

	stdout, _, err := run(t, sampleEnvelope(t, message.KindSubmission), "filter")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"dateOfBirth": "1970-04-24"`)
	assert.NotContains(t, stdout, "familyName")
}

func TestInspectCommand(t *testing.T) {
	f := newFixture(t, `["DOB_YR","60","19","NOPE"]`)

	stdout, _, err := run(t, "", "inspect", "-a", f.allow, "-m", f.table, "--table")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Allowed codes: 4")
	assert.Contains(t, stdout, "Allowed paths: 2")
	assert.Contains(t, stdout, "DateOfBirth")
	assert.Contains(t, stdout, "Race.White")
	assert.Contains(t, stdout, "Codes without mapping: [NOPE]")
	assert.Contains(t, stdout, "Codes without record property: [19]")
	assert.Contains(t, stdout, "DOB_YR: DateOfBirth")
}

func TestInspectCommandDump(t *testing.T) {
	f := newFixture(t, `["DOB_YR"]`)

	stdout, _, err := run(t, "", "inspect", "-a", f.allow, "-m", f.table, "--dump")
	require.NoError(t, err)
	assert.Contains(t, stdout, "DateOfBirth")
	assert.Contains(t, stdout, "LoadReport")
}

func TestSampleCommand(t *testing.T) {
	t.Setenv("VRFILTER_ALLOW_LIST", "")

	stdout, _, err := run(t, "", "sample", "--kind", "update")
	require.NoError(t, err)

	var env message.Envelope[deathrecord.DeathRecord]
	require.NoError(t, json.Unmarshal([]byte(stdout), &env))
	assert.Equal(t, message.KindUpdate, env.Kind)
	assert.Equal(t, deathrecord.Sample(), env.Record)
	assert.NotEmpty(t, env.ID)

	_, _, err = run(t, "", "sample", "--kind", "telegram")
	require.Error(t, err)
}

func TestUnknownLogFormat(t *testing.T) {
	_, _, err := run(t, "", "sample", "--log-format", "xml")
	require.Error(t, err)
}
