// Package validation lints checkbox list definition files. Unlike the
// definitions loader, which stops at the first problem, it collects every
// issue it finds so a whole directory can be fixed in one pass.
package validation
