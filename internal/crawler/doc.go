// Package crawler provides HTTP fetching and lesson-link discovery for
// documentation sites. The Fetcher retrieves pages as queryable DOM
// documents and the LinkExtractor discovers sibling lesson pages via
// sidebar selectors and a page-wide anchor scan.
package crawler
