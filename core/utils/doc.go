// Package utils provides loose value conversion for rows read from databases
// and CSV files, built on spf13/cast.
package utils
