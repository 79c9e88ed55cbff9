// Package shared holds helpers used by more than one odooseed package.
//
// The testutil subpackage captures slog records so tests can assert on what
// the exporter and runner logged:
//
//	logger, handler := testutil.NewTestLogger(t)
//	exp := exporter.New(exporter.WithLogger(logger))
//	...
//	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Export written")
//	testutil.AssertLogAttr(t, handler, "component", "exporter")
package shared
