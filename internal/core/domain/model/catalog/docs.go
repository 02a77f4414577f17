// Package catalog contains the product-side configuration of the grocery
// platform: the category tree, vendors (including company-owned dark stores),
// and products. Like the geographic hierarchy, catalog data is administratively
// maintained and consumed through immutable snapshots.
package catalog
