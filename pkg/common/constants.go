package common

// Project structure constants
const (
	// WasmTarget is the cargo target triple for portable contract builds
	WasmTarget = "wasm32-unknown-unknown"

	// BuildOutputDir is where cargo places release wasm artifacts, relative to the workspace root
	BuildOutputDir = "target/wasm32-unknown-unknown/release"

	// NativeOutputDir is where cargo places native release artifacts (cdylib builds)
	NativeOutputDir = "target/release"

	// ResourceDir holds the collected wasm artifacts consumed at deploy time
	ResourceDir = "res"

	// DevAccountDir holds the persisted dev-account identity written by the near CLI
	DevAccountDir = "neardev"

	// DevAccountFile is the single-identifier record inside DevAccountDir
	DevAccountFile = "dev-account"

	// DevAccountEnvFile is the companion env-format record the near CLI writes
	DevAccountEnvFile = "dev-account.env"

	// ReceiptsDir collects deploy receipts, kept across dev-account resets
	ReceiptsDir = "neardev/receipts"

	// ProjectConfigFile is the per-workspace nearkit configuration
	ProjectConfigFile = "nearkit.yaml"

	// CargoManifest is the workspace manifest the crate name is read from
	CargoManifest = "Cargo.toml"

	// DefaultAccountID receives fixed-account deploys when no override is configured
	DefaultAccountID = "huxley.testnet"

	// DefaultNetwork is the network selector used by every deploy path unless overridden
	DefaultNetwork = "testnet"

	// DefaultLibDir is where `install` places native shared libraries
	DefaultLibDir = "/usr/local/lib"
)

// Environment variables
const (
	// EnvNetwork selects the NEAR network for every toolchain invocation in a deploy sequence
	EnvNetwork = "NEAR_ENV"

	// EnvTestFilter narrows which tests run; empty runs the full suite
	EnvTestFilter = "NEARKIT_TEST_FILTER"

	// EnvSkipDBTests tells the contract test suite to self-skip database-backed tests
	EnvSkipDBTests = "NEARKIT_SKIP_DB_TESTS"

	// EnvTestDatabaseURL points at the relational fixture some tests need
	EnvTestDatabaseURL = "TEST_DATABASE_URL"
)

// External toolchain binaries
const (
	CargoBin = "cargo"
	NearBin  = "near"
)
