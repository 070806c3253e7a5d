package cptrie

/*

# Code point tries

This package maps every Unicode code point (0..=0x10FFFF) to a fixed-width
value using the compacted three-stage trie layout of ICU's UCPTrie (as used
by ICU4X CodePointTrie). A trie is a Header plus two flat arrays:

- an index array of uint16 entries
- a data array of 8, 16 or 32 bit values

Both arrays are read in place from little-endian bytes. Loading a trie is a
validation pass, lookups never allocate and never fail.

## Lookup

Code points below the fast-indexing limit resolve in two steps:

	data[index[cp>>6] + (cp&63)]

The limit is 0x10000 for Fast tries and 0x1000 for Small tries. Above it the
lookup walks three index stages:

	i1 = index[(cp>>14) + index1Offset]
	i2 = index[i1 + (cp>>9)&31]
	d  = index[i2 + (cp>>4)&31]     // or an 18-bit entry, see below
	v  = data[d + cp&15]

If bit 15 of the index-2 entry is set, the index-3 block holds 18-bit data
offsets packed in groups of nine words: one word carrying the high two bits
of eight entries followed by the eight low 16-bit halves.

Code points at or above Header.HighStart all share the "high value", stored
at data[len-2]. The last data entry is the error value returned for
ill-formed UTF-8.

## Construction

New checks every offset the lookup can reach against the array bounds before
returning a Trie. That is the only place bounds are checked: Get and the
range iterators index without re-checking.

## Containers

Raw header and arrays can be wrapped in:

- a CPT1 blob: a 40 byte little-endian prefix then index and data bytes
- an ICU "Tri3" binary as written by ICU4C's ucptrie_toBinary

*/
