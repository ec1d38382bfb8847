// Package fs provides the filesystem seam used for writing grid files.
//
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test utility that injects write, sync, close and rename
//     failures
//
// Production code uses fs.Default. Tests inject a FaultyFS:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp", fs.Fault{FailAfterBytes: 16})
//	err := gridfile.SaveFS(ffs, path, g)
package fs
