// Package reporting turns small in-memory records into printable reports:
// per-student grade summaries, low-stock alerts and the common elements of
// two lists.
//
// Every report function validates its whole input before producing output,
// so a failed call writes nothing. Failures are *errors.AppError values with
// code INVALID_ARGUMENT; the document loaders add TYPE_ERROR for input whose
// shape is wrong.
//
//	book, err := reporting.LoadGradebook(f)
//	if err != nil {
//	    return err
//	}
//	return reporting.AnalyzeGrades(os.Stdout, book)
package reporting
