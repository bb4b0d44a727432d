package catalyst

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/):
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"
