/*
Package rowfeed presents Google Sheets spreadsheets as ordered lists of
column-name/value rows - the 'list feed' view of a worksheet, where the first
row holds the column headers and every subsequent row is one record addressed
by its zero-based position.

The listfeed package is the library surface: a catalog client for listing
spreadsheets and worksheets, and a worksheet handle for row get/insert/update/
delete operations. rowfeed can also be used from the command line and supports
the following commands:

  - authorise, to authorise rowfeed to access Google Sheets and cache the OAuth tokens
  - list, to list the spreadsheets accessible to the configured credentials
  - worksheets, to list the worksheets in a spreadsheet
  - get, to download the rows of a worksheet as a TSV file
  - insert, to append a row to a worksheet
  - update, to update the row at a position in a worksheet
  - delete, to delete the row at a position in a worksheet
  - clear, to delete every row in a worksheet
*/
package rowfeed
