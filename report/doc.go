// report turns a decoded [carnage.Game] into its external output shapes:
// the CSV table, the fixed-width console report and the cumulative JSON
// match log. All the recognition work happens upstream; these are thin
// presentation adapters over one shared engine.
package report
