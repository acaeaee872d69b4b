// Package recrypt re-encrypts password-protected files.
//
// A file sealed under one password is opened and sealed again under another
// password. Every run ends with a structured *job.Result whose Status is
// SUCCESS or FAILURE; operational failures never surface as errors or panics.
//
//	srv, err := recrypt.New(ctx, recrypt.WithConfig(cfg))
//	if err != nil {
//		return err
//	}
//	defer srv.Close(ctx)
//	result := srv.Run(ctx, job.NewRequest("report.bin", "old", "new"))
//	fmt.Println(result) // job job-… status: SUCCESS …
//
// Passwords can be given literally or as viant/scy secret references
// (scy:<URL>|<key>). Results are kept in memory or, when configured, as JSON
// documents on any viant/afs storage.
package recrypt
