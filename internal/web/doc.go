// Package web serves the AuroraAir portal pages and their form endpoints.
//
// Pages are static HTML templates loaded into pkg/dom documents. A POST runs
// the same page behaviour the browser runs (frontend.Init followed by a
// submit event) against the submitted values, so the server and the page
// always agree on which fields are in error. Datastar requests receive
// element patches instead of full pages.
package web
