// mono provides the single-channel images that the recognition engine
// works with, plus the two primitive operations everything else is built
// on: in-place binarization and tolerant template matching.
//
// Screenshots and rasterized text both end up as [Image] values, which is
// what makes them directly comparable: a rendered reference string can be
// scored against any position of a thresholded screenshot with
// [Image.Match].
package mono
