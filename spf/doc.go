/*
 * doc.go, part of gbsa.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package spf implements the solvent parameter format, a compressed,
line-oriented text format for one fully configured GB/VI softcore parameter
store. Unlike a trajectory, a parameter file holds a single state and must
round-trip every value exactly, so numbers are written in full precision.

The compression codec is chosen from the last letter of the filename:
zstd for 's', 'f' and anything unrecognized, gzip for 'z', flate for 'r'
and lzw for 'l'. Inside the compressed stream the layout is:

	key=value        user header, zero or more lines
	** N             atom count
	@ ...            dielectrics, probe radius, electric constant
	% ...            cutoff flag and distance
	$ ...            periodic flag and box dimensions
	! ...            scaling method and quintic constants
	r sr g b         one line per atom: atomic radius, scaled radius,
	                 gamma, Born-radius scale factor
	*                terminator
*/
package spf
