/*

Package seer2arff converts fixed-width text extracts from the SEER
cancer registry into the ARFF format used by machine learning
toolkits.  Each SEER record is one text line; every attribute of
interest occupies a fixed column span, addressed by the 1-based start
position printed in the SEER data dictionary.

The package declares a set of named column converters that slice,
normalize, and where needed recode the raw registry values.  The SEER
convention of coding unknown data as all nines, and the blank spans
left by non-collected fields, both collapse to the ARFF missing-value
sentinel "?".  Row filters built from the same attributes select the
subset of records to emit; the stock attribute table and filters
target the breast cancer survival study the tool was written for.

A conversion is a single streaming pass: the ARFF header is written
once, then each input record is tested against the filter and, if
selected, rendered as one comma-separated data line.  Files of any
size can be converted without loading them into memory.

*/
package seer2arff
