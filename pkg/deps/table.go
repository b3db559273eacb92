// Package deps classifies named third-party dependencies as used or unused
// based on the import strings found in a source tree.
package deps

// Dependency is a named library and the package prefixes that identify it.
type Dependency struct {
	Name     string   `json:"name"     yaml:"name"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}

// DefaultTable is the built-in dependency table for Android projects.
var DefaultTable = []Dependency{
	{Name: "retrofit", Patterns: []string{"retrofit2"}},
	{Name: "ktor", Patterns: []string{"io.ktor"}},
	{Name: "dexter", Patterns: []string{"com.karumi.dexter"}},
	{Name: "firebase", Patterns: []string{"com.google.firebase"}},
	{Name: "hilt", Patterns: []string{"dagger.hilt", "javax.inject"}},
	{Name: "gson", Patterns: []string{"com.google.gson"}},
	{Name: "coroutines", Patterns: []string{"kotlinx.coroutines"}},
	{Name: "timber", Patterns: []string{"timber.log"}},
	{Name: "okhttp", Patterns: []string{"okhttp3"}},
	{Name: "androidx_core", Patterns: []string{"androidx.core"}},
	{Name: "appcompat", Patterns: []string{"androidx.appcompat"}},
	{Name: "material", Patterns: []string{"com.google.android.material"}},
	{Name: "constraint_layout", Patterns: []string{"androidx.constraintlayout"}},
	{Name: "lifecycle", Patterns: []string{"androidx.lifecycle"}},
	{Name: "websocket", Patterns: []string{"org.java_websocket", "java_websocket"}},
	{Name: "webrtc_lib", Patterns: []string{"com.telnyx.webrtc.lib"}},
}
